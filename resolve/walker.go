/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolve

import (
	"path/filepath"

	"bennypowers.dev/noderesolve/specifier"
)

// resolveModules looks for spec in the dependency directory of base and of
// every ancestor up to the filesystem root. The nearest match wins.
// A subpath such as "pkg/sub/file" is joined as-is; only the joined path
// itself may be resolved as a package directory.
func (r *Resolver) resolveModules(spec, base string, probe probeFunc) (string, error) {
	for _, modules := range r.modulePaths(base) {
		ok, err := r.isDir(modules)
		if err != nil {
			return "", err
		}
		if !ok {
			continue
		}

		found, err := probe(filepath.Join(modules, spec))
		if found != "" || err != nil {
			return found, err
		}
	}

	return "", nil
}

// modulePaths lists the dependency directories searched from base, nearest first.
func (r *Resolver) modulePaths(base string) []string {
	var paths []string
	dir := base
	for {
		paths = append(paths, filepath.Join(dir, r.modulesDir))

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return paths
		}
		dir = parent
	}
}

// ModulePaths returns the dependency directories a bare specifier would be
// searched in from baseDir, nearest first. Directories are listed whether
// or not they exist.
func (r *Resolver) ModulePaths(baseDir string) ([]string, error) {
	base, err := r.WithBaseDir(baseDir).resolveBaseDir()
	if err != nil {
		return nil, r.wrap(&specifier.Specifier{}, baseDir, err)
	}
	return r.modulePaths(base), nil
}
