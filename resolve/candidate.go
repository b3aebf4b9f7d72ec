/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolve

import (
	"errors"
	"io/fs"
	"path/filepath"

	nrfs "bennypowers.dev/noderesolve/fs"
	"bennypowers.dev/noderesolve/manifest"
	"bennypowers.dev/noderesolve/specifier"
)

// The probe functions below return ("", nil) when nothing matched, so that
// only real failures travel as errors.

// resolvePath resolves candidate as a file, then as a directory.
func (r *Resolver) resolvePath(candidate string) (string, error) {
	if found, err := r.resolveFile(candidate); found != "" || err != nil {
		return found, err
	}
	return r.resolveDirectory(candidate)
}

// resolveFile accepts candidate itself, then candidate + each extension.
func (r *Resolver) resolveFile(candidate string) (string, error) {
	ok, err := r.isFile(candidate)
	if err != nil || ok {
		return acceptIf(candidate, ok, err)
	}

	for _, ext := range r.extensions {
		withExt := candidate + ext
		ok, err := r.isFile(withExt)
		if err != nil || ok {
			return acceptIf(withExt, ok, err)
		}
	}

	return "", nil
}

// probeFunc resolves one candidate path.
type probeFunc func(candidate string) (string, error)

// probeFor returns the probe for a specifier. A trailing slash, "." or ".."
// names a directory, so file probes are skipped.
func (r *Resolver) probeFor(parsed *specifier.Specifier) probeFunc {
	if parsed.IsDirectoryOnly() {
		return r.resolveDirectory
	}
	return r.resolvePath
}

// resolveDirectory consults the package.json main fields of dir, then
// falls back to dir/index.
func (r *Resolver) resolveDirectory(dir string) (string, error) {
	ok, err := r.isDir(dir)
	if err != nil || !ok {
		return "", err
	}

	if found, err := r.resolveMain(dir); found != "" || err != nil {
		return found, err
	}
	return r.resolveIndex(dir)
}

// resolveMain follows the first main field whose target exists. A target
// is tried as a file and as a directory index, but its own package.json is
// never read: manifests do not chain.
func (r *Resolver) resolveMain(dir string) (string, error) {
	m, err := manifest.Read(r.fs, dir)
	if err != nil {
		path := filepath.Join(dir, manifest.FileName)
		if errors.Is(err, manifest.ErrInvalid) {
			if r.strictManifests {
				return "", newManifestError(path, err)
			}
			return "", nil
		}
		return "", newIOError(path, err)
	}
	if m == nil {
		return "", nil
	}

	for _, field := range r.mainFields {
		entry, ok := m.Field(field)
		if !ok {
			continue
		}
		target := filepath.Join(dir, entry)
		if filepath.IsAbs(entry) {
			target = filepath.Clean(entry)
		}
		if found, err := r.resolveFile(target); found != "" || err != nil {
			return found, err
		}
		if found, err := r.resolveIndex(target); found != "" || err != nil {
			return found, err
		}
	}

	return "", nil
}

// resolveIndex tries dir/index + each extension.
func (r *Resolver) resolveIndex(dir string) (string, error) {
	for _, ext := range r.extensions {
		index := filepath.Join(dir, "index"+ext)
		ok, err := r.isFile(index)
		if err != nil || ok {
			return acceptIf(index, ok, err)
		}
	}
	return "", nil
}

func acceptIf(path string, ok bool, err error) (string, error) {
	if err != nil || !ok {
		return "", err
	}
	return path, nil
}

// isFile reports whether path names an existing regular file.
func (r *Resolver) isFile(path string) (bool, error) {
	info, err := r.stat(path)
	if err != nil || info == nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// isDir reports whether path names an existing directory.
func (r *Resolver) isDir(path string) (bool, error) {
	info, err := r.stat(path)
	if err != nil || info == nil {
		return false, err
	}
	return info.IsDir(), nil
}

// stat returns (nil, nil) for absent paths.
func (r *Resolver) stat(path string) (fs.FileInfo, error) {
	info, err := r.fs.Stat(path)
	if err != nil {
		if nrfs.IsNotExist(err) {
			return nil, nil
		}
		return nil, newIOError(path, err)
	}
	return info, nil
}
