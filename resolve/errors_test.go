/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolve

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/noderesolve/internal/mapfs"
	"bennypowers.dev/noderesolve/specifier"
)

func TestResolve_IOErrorIsNotNotFound(t *testing.T) {
	r, mfs := newFixtureResolver(t)
	mfs.FailOn(root+"/extensions/js-file", fs.ErrPermission)

	_, err := r.Resolve("./extensions/js-file")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.NotErrorIs(t, err, ErrNotFound)

	var resErr *Error
	require.True(t, errors.As(err, &resErr))
	assert.Equal(t, root+"/extensions/js-file", resErr.Path)
	assert.Equal(t, specifier.KindRelative, resErr.Kind)
}

func TestResolve_IOErrorDuringWalk(t *testing.T) {
	r, mfs := newFixtureResolver(t)
	mfs.FailOn(root+"/node-modules/node_modules", fs.ErrPermission)

	_, err := r.WithBaseDir(root + "/node-modules/walk/src").Resolve("does-not-exist")
	assert.ErrorIs(t, err, ErrIO)
}

func TestResolve_IOErrorReadingManifest(t *testing.T) {
	r, mfs := newFixtureResolver(t)
	mfs.FailOn(root+"/package-json/main-file/package.json", fs.ErrPermission)

	_, err := r.Resolve("./package-json/main-file")
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestResolve_StrictManifests(t *testing.T) {
	r, _ := newFixtureResolver(t)
	strict := r.StrictManifests(true)

	for _, spec := range []string{"./package-json/invalid", "./package-json/not-object"} {
		t.Run(spec, func(t *testing.T) {
			_, err := strict.Resolve(spec)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidManifest)
			assert.NotErrorIs(t, err, ErrNotFound)

			res, err := r.Resolve(spec)
			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(res.Path, "/index.js"), "lenient mode falls back to index, got %s", res.Path)
		})
	}

	res, err := strict.Resolve("./package-json/main-file")
	require.NoError(t, err)
	assert.Equal(t, root+"/package-json/main-file/whatever.js", res.Path)
}

func TestResolve_EmptySpecifier(t *testing.T) {
	_, err := New().WithFileSystem(mapfs.New()).Resolve("")
	assert.ErrorIs(t, err, ErrEmptySpecifier)
}

func TestError_Message(t *testing.T) {
	r, _ := newFixtureResolver(t)

	_, err := r.Resolve("left-pad")
	require.Error(t, err)
	assert.Equal(t, `cannot find module "left-pad" from /fx`, err.Error())

	e := &Error{Specifier: "x", Err: ErrIO, Path: "/p", Cause: fs.ErrPermission}
	assert.Equal(t, `resolving "x": filesystem error: /p: permission denied`, e.Error())
}
