/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fs provides the filesystem abstraction used during module resolution.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

// FileSystem provides the filesystem queries module resolution needs.
// Implementations must be safe for concurrent use.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(name string) ([]byte, error)

	// Stat returns file information, following symbolic links.
	Stat(name string) (fs.FileInfo, error)

	// Exists returns true if the path exists.
	Exists(path string) bool

	// EvalSymlinks returns the path with every symbolic link replaced by its target.
	EvalSymlinks(path string) (string, error)

	// Getwd returns the working directory used for relative base directories.
	Getwd() (string, error)
}

// OSFileSystem implements FileSystem using the standard os package.
type OSFileSystem struct{}

// NewOSFileSystem creates a new filesystem that uses the standard os package.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// ReadFile reads the entire contents of a file.
func (f *OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Stat returns file information for the named file.
func (f *OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Exists returns true if the path exists.
func (f *OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EvalSymlinks returns the real path of the named file.
func (f *OSFileSystem) EvalSymlinks(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}

// Getwd returns the process working directory.
func (f *OSFileSystem) Getwd() (string, error) {
	return os.Getwd()
}

// IsNotExist reports whether err means the path is absent. A path that runs
// through a regular file (ENOTDIR), a name too long to exist (ENAMETOOLONG)
// and a symlink loop (ELOOP) are absent too.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, syscall.ENOTDIR) ||
		errors.Is(err, syscall.ENAMETOOLONG) ||
		errors.Is(err, syscall.ELOOP)
}
