/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs provides an in-memory filesystem implementation for testing.
package mapfs

import (
	"io/fs"
	"path"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"testing/fstest"
	"time"
)

// maxLinkHops bounds symlink expansion, like the kernel's ELOOP limit.
const maxLinkHops = 40

// errTooManyLinks is returned when symlink expansion does not terminate.
var errTooManyLinks error = syscall.ELOOP

// MapFileSystem implements FileSystem using an in-memory fstest.MapFS.
// Symbolic links are kept in a separate table and expanded component by
// component before the MapFS is consulted.
type MapFileSystem struct {
	mu       sync.RWMutex
	mapFS    fstest.MapFS
	links    map[string]string
	failures map[string]error
	workDir  string
	modTime  time.Time
	ops      atomic.Int64
}

// New creates a new in-memory filesystem for testing.
func New() *MapFileSystem {
	return &MapFileSystem{
		mapFS:    make(fstest.MapFS),
		links:    make(map[string]string),
		failures: make(map[string]error),
		workDir:  "/",
		modTime:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// AddFile adds a file to the in-memory filesystem.
func (mfs *MapFileSystem) AddFile(p string, content string, mode fs.FileMode) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	p = mfs.cleanPath(p)
	mfs.mapFS[p] = &fstest.MapFile{
		Data:    []byte(content),
		Mode:    mode,
		ModTime: mfs.modTime,
	}
}

// AddDir adds a directory to the in-memory filesystem.
func (mfs *MapFileSystem) AddDir(p string, mode fs.FileMode) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	p = mfs.cleanPath(p)
	mfs.mapFS[path.Join(p, ".keep")] = &fstest.MapFile{
		Data:    []byte(""),
		Mode:    mode.Perm(),
		ModTime: mfs.modTime,
	}
}

// AddSymlink makes link point at target. A relative target is taken
// relative to the directory containing link.
func (mfs *MapFileSystem) AddSymlink(link, target string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	link = mfs.cleanPath(link)
	if !path.IsAbs(target) {
		target = path.Join("/", path.Dir(link), target)
	}
	mfs.links[link] = mfs.cleanPath(target)
}

// FailOn makes Stat and ReadFile of p return err.
func (mfs *MapFileSystem) FailOn(p string, err error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.failures[mfs.cleanPath(p)] = err
}

// SetWorkingDir sets the directory returned by Getwd.
func (mfs *MapFileSystem) SetWorkingDir(dir string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.workDir = dir
}

// Ops returns the number of filesystem queries served so far.
func (mfs *MapFileSystem) Ops() int64 {
	return mfs.ops.Load()
}

// ReadFile implements FileSystem.
func (mfs *MapFileSystem) ReadFile(name string) ([]byte, error) {
	mfs.ops.Add(1)
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	p := mfs.cleanPath(name)
	if err, ok := mfs.failures[p]; ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	realPath, err := mfs.expandLinks(p)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	return fs.ReadFile(mfs.mapFS, realPath)
}

// Stat implements FileSystem.
func (mfs *MapFileSystem) Stat(name string) (fs.FileInfo, error) {
	mfs.ops.Add(1)
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	p := mfs.cleanPath(name)
	if err, ok := mfs.failures[p]; ok {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: err}
	}
	realPath, err := mfs.expandLinks(p)
	if err != nil {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: err}
	}
	return fs.Stat(mfs.mapFS, realPath)
}

// Exists implements FileSystem.
func (mfs *MapFileSystem) Exists(p string) bool {
	_, err := mfs.Stat(p)
	return err == nil
}

// EvalSymlinks implements FileSystem.
func (mfs *MapFileSystem) EvalSymlinks(name string) (string, error) {
	mfs.ops.Add(1)
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	realPath, err := mfs.expandLinks(mfs.cleanPath(name))
	if err != nil {
		return "", &fs.PathError{Op: "lstat", Path: name, Err: err}
	}
	if _, err := fs.Stat(mfs.mapFS, realPath); err != nil {
		return "", err
	}
	if realPath == "." {
		return "/", nil
	}
	return "/" + realPath, nil
}

// Getwd implements FileSystem.
func (mfs *MapFileSystem) Getwd() (string, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	return mfs.workDir, nil
}

// expandLinks replaces every symlink component of p with its target.
// The caller must hold mu.
func (mfs *MapFileSystem) expandLinks(p string) (string, error) {
	if len(mfs.links) == 0 {
		return p, nil
	}

	parts := strings.Split(p, "/")
	cur := "."
	hops := 0
	for i := 0; i < len(parts); i++ {
		if parts[i] == "." || parts[i] == "" {
			continue
		}
		next := path.Join(cur, parts[i])
		target, ok := mfs.links[next]
		if !ok {
			cur = next
			continue
		}
		hops++
		if hops > maxLinkHops {
			return "", errTooManyLinks
		}
		parts = append(strings.Split(target, "/"), parts[i+1:]...)
		cur = "."
		i = -1
	}
	return cur, nil
}

// cleanPath maps an absolute slash path onto a valid fs.FS name.
func (mfs *MapFileSystem) cleanPath(p string) string {
	cleaned := path.Clean(p)
	if !path.IsAbs(cleaned) {
		cleaned = "/" + cleaned
	}
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" {
		return "."
	}
	return cleaned
}
