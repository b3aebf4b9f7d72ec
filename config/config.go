/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for module resolution.
package config

import (
	"path/filepath"

	nrfs "bennypowers.dev/noderesolve/fs"
	"bennypowers.dev/noderesolve/resolve"
)

// Config represents the resolver configuration.
type Config struct {
	// BaseDir is the directory specifiers are resolved from.
	// Relative values are taken relative to the project root.
	BaseDir string `yaml:"baseDir" json:"baseDir"`

	// Extensions are tried in order when a path does not name a file.
	Extensions []string `yaml:"extensions" json:"extensions"`

	// MainFields are the package.json fields consulted, in order.
	MainFields []string `yaml:"mainFields" json:"mainFields"`

	// ModulesDir is the dependency directory name (default: node_modules).
	ModulesDir string `yaml:"modulesDir" json:"modulesDir"`

	// PreserveSymlinks keeps symlinked path components in results.
	// Unset means true.
	PreserveSymlinks *bool `yaml:"preserveSymlinks" json:"preserveSymlinks"`

	// StrictManifests reports undecodable package.json files as errors.
	StrictManifests bool `yaml:"strictManifests" json:"strictManifests"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{}
}

// Resolver builds a resolver from the config. rootDir anchors a relative BaseDir.
func (c *Config) Resolver(filesystem nrfs.FileSystem, rootDir string) *resolve.Resolver {
	r := resolve.New().WithFileSystem(filesystem)

	switch {
	case c.BaseDir == "":
		r = r.WithBaseDir(rootDir)
	case filepath.IsAbs(c.BaseDir) || rootDir == "":
		r = r.WithBaseDir(c.BaseDir)
	default:
		r = r.WithBaseDir(filepath.Join(rootDir, c.BaseDir))
	}

	if len(c.Extensions) > 0 {
		r = r.WithExtensions(c.Extensions...)
	}
	if len(c.MainFields) > 0 {
		r = r.WithMainFields(c.MainFields...)
	}
	if c.ModulesDir != "" {
		r = r.WithModulesDir(c.ModulesDir)
	}
	if c.PreserveSymlinks != nil {
		r = r.PreserveSymlinks(*c.PreserveSymlinks)
	}
	return r.StrictManifests(c.StrictManifests)
}
