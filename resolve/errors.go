/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolve

import (
	"errors"
	"fmt"

	"bennypowers.dev/noderesolve/specifier"
)

// Sentinel errors for resolution failures. Use errors.Is against the error
// returned by Resolve.
var (
	// ErrNotFound indicates no candidate path named an existing file.
	ErrNotFound = errors.New("module not found")

	// ErrIO indicates a filesystem operation failed for a reason other than absence.
	ErrIO = errors.New("filesystem error")

	// ErrInvalidManifest indicates an undecodable package.json under strict manifests.
	ErrInvalidManifest = errors.New("invalid package manifest")

	// ErrEmptySpecifier indicates an empty specifier string.
	ErrEmptySpecifier = errors.New("empty specifier")
)

// Error describes a failed resolution.
type Error struct {
	// Specifier is the specifier that failed to resolve.
	Specifier string

	// BaseDir is the directory the specifier was resolved from.
	BaseDir string

	// Kind is the classification of the specifier.
	Kind specifier.Kind

	// Path is the filesystem path involved in an I/O or manifest failure.
	Path string

	// Err is one of the package sentinel errors.
	Err error

	// Cause is the underlying filesystem or decoding error, if any.
	Cause error
}

func (e *Error) Error() string {
	switch {
	case errors.Is(e.Err, ErrNotFound):
		return fmt.Sprintf("cannot find module %q from %s", e.Specifier, e.BaseDir)
	case e.Cause != nil && e.Path != "":
		return fmt.Sprintf("resolving %q: %v: %s: %v", e.Specifier, e.Err, e.Path, e.Cause)
	case e.Cause != nil:
		return fmt.Sprintf("resolving %q: %v: %v", e.Specifier, e.Err, e.Cause)
	default:
		return fmt.Sprintf("resolving %q: %v", e.Specifier, e.Err)
	}
}

// Unwrap exposes both the sentinel and the underlying cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// ioError is raised deep inside a probe and decorated with the specifier
// by Resolve.
type ioError struct {
	sentinel error
	path     string
	cause    error
}

func (e *ioError) Error() string {
	return fmt.Sprintf("%v: %s: %v", e.sentinel, e.path, e.cause)
}

func newIOError(path string, cause error) error {
	return &ioError{sentinel: ErrIO, path: path, cause: cause}
}

func newManifestError(path string, cause error) error {
	return &ioError{sentinel: ErrInvalidManifest, path: path, cause: cause}
}
