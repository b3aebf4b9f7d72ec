/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package manifest

import (
	"errors"
	"io/fs"
	"testing"

	"bennypowers.dev/noderesolve/internal/mapfs"
)

func TestRead_Fields(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/pkg/package.json", `{"name":"pkg","main":"lib/index.js","module":"","browser":false}`, 0644)

	m, err := Read(mfs, "/pkg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m == nil {
		t.Fatal("expected manifest, got nil")
	}
	if m.Path != "/pkg/package.json" {
		t.Errorf("Path = %q, want %q", m.Path, "/pkg/package.json")
	}

	tests := []struct {
		field string
		want  string
		ok    bool
	}{
		{"main", "lib/index.js", true},
		{"name", "pkg", true},
		{"module", "", false},
		{"browser", "", false},
		{"missing", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			got, ok := m.Field(tt.field)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Field(%q) = (%q, %v), want (%q, %v)", tt.field, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestRead_Absent(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddDir("/pkg", 0755)

	m, err := Read(mfs, "/pkg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != nil {
		t.Errorf("expected nil manifest, got %+v", m)
	}
}

func TestRead_DirectoryNamedPackageJSON(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddDir("/pkg/package.json", 0755)

	m, err := Read(mfs, "/pkg")
	if err != nil || m != nil {
		t.Errorf("Read() = (%v, %v), want (nil, nil)", m, err)
	}
}

func TestRead_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax error", `{"main": `},
		{"array", `["main"]`},
		{"string", `"main"`},
		{"null", `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mfs := mapfs.New()
			mfs.AddFile("/pkg/package.json", tt.content, 0644)

			_, err := Read(mfs, "/pkg")
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestRead_IOError(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/pkg/package.json", `{}`, 0644)
	mfs.FailOn("/pkg/package.json", fs.ErrPermission)

	_, err := Read(mfs, "/pkg")
	if !errors.Is(err, fs.ErrPermission) {
		t.Errorf("error = %v, want ErrPermission", err)
	}
	if errors.Is(err, ErrInvalid) {
		t.Error("I/O failures must not be reported as invalid manifests")
	}
}
