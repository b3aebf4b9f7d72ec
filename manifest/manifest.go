/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package manifest reads the package.json fields consulted during directory resolution.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	nrfs "bennypowers.dev/noderesolve/fs"
)

// FileName is the name of the package descriptor inside a package directory.
const FileName = "package.json"

// ErrInvalid indicates a descriptor that exists but is not a JSON object.
var ErrInvalid = errors.New("invalid package.json")

// Manifest is a decoded package descriptor. Only top-level string fields
// are meaningful; everything else is kept raw and ignored.
type Manifest struct {
	// Path is the descriptor file that was read.
	Path string

	fields map[string]json.RawMessage
}

// Read decodes dir/package.json. It returns (nil, nil) when the directory
// has no descriptor, and an error wrapping ErrInvalid when the descriptor
// cannot be decoded as a JSON object.
func Read(filesystem nrfs.FileSystem, dir string) (*Manifest, error) {
	path := filepath.Join(dir, FileName)

	info, err := filesystem.Stat(path)
	if err != nil {
		if nrfs.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, nil
	}

	data, err := filesystem.ReadFile(path)
	if err != nil {
		if nrfs.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	return Parse(path, data)
}

// Parse decodes descriptor bytes read from path.
func Parse(path string, data []byte) (*Manifest, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}
	// "null" decodes into a nil map without error
	if fields == nil {
		return nil, fmt.Errorf("%w: %s: not an object", ErrInvalid, path)
	}
	return &Manifest{Path: path, fields: fields}, nil
}

// Field returns the value of a top-level field when it is a non-empty string.
func (m *Manifest) Field(name string) (string, bool) {
	raw, ok := m.fields[name]
	if !ok {
		return "", false
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil || value == "" {
		return "", false
	}
	return value, true
}
