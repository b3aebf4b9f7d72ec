/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve implements the Node.js require() resolution algorithm.
//
// A Resolver turns a specifier and a base directory into the absolute path
// of an existing file, without reading anything but package.json files:
//
//	r := resolve.New().WithBaseDir("/project/src")
//	res, err := r.Resolve("lodash/get")
//	// res.Path == "/project/node_modules/lodash/get.js"
//
// Resolvers are immutable. Every With* method returns a new Resolver, so a
// single value can be shared between goroutines.
package resolve

import (
	"errors"
	"path/filepath"
	"slices"
	"strings"

	"bennypowers.dev/noderesolve/core"
	nrfs "bennypowers.dev/noderesolve/fs"
	"bennypowers.dev/noderesolve/specifier"
)

// DefaultModulesDir is the dependency directory searched for bare specifiers.
const DefaultModulesDir = "node_modules"

var (
	defaultExtensions = []string{".js", ".json", ".node"}
	defaultMainFields = []string{"main"}
)

// Resolution is a successful resolution.
type Resolution struct {
	// Specifier is the specifier as given.
	Specifier string

	// Path is the absolute, cleaned path of the resolved file. For core
	// modules it is the specifier itself.
	Path string

	// Kind is the classification of the specifier.
	Kind specifier.Kind
}

// IsCore returns true when the specifier names a built-in module that the
// runtime provides and Path is not a filesystem path.
func (r *Resolution) IsCore() bool {
	return r.Kind == specifier.KindCore
}

// Resolver holds resolution options.
type Resolver struct {
	fs               nrfs.FileSystem
	baseDir          string
	extensions       []string
	mainFields       []string
	modulesDir       string
	preserveSymlinks bool
	strictManifests  bool
}

// New creates a Resolver with default options: the process working
// directory as base, extensions .js, .json and .node, the "main" field,
// node_modules, preserved symlinks and lenient manifests.
func New() *Resolver {
	return &Resolver{
		fs:               nrfs.NewOSFileSystem(),
		extensions:       slices.Clone(defaultExtensions),
		mainFields:       slices.Clone(defaultMainFields),
		modulesDir:       DefaultModulesDir,
		preserveSymlinks: true,
	}
}

func (r *Resolver) clone() *Resolver {
	c := *r
	c.extensions = slices.Clone(r.extensions)
	c.mainFields = slices.Clone(r.mainFields)
	return &c
}

// WithBaseDir returns a Resolver that resolves relative and bare specifiers
// from dir. A relative dir is taken relative to the working directory at
// resolution time.
func (r *Resolver) WithBaseDir(dir string) *Resolver {
	c := r.clone()
	c.baseDir = dir
	return c
}

// WithExtensions returns a Resolver that tries exts, in order, when a path
// does not name a file. A missing leading dot is added.
func (r *Resolver) WithExtensions(exts ...string) *Resolver {
	c := r.clone()
	c.extensions = make([]string, 0, len(exts))
	for _, ext := range exts {
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.extensions = append(c.extensions, ext)
	}
	return c
}

// WithMainFields returns a Resolver that consults the given package.json
// fields, in order, when resolving a directory.
func (r *Resolver) WithMainFields(fields ...string) *Resolver {
	c := r.clone()
	c.mainFields = slices.DeleteFunc(slices.Clone(fields), func(f string) bool { return f == "" })
	return c
}

// WithModulesDir returns a Resolver that searches name instead of node_modules.
func (r *Resolver) WithModulesDir(name string) *Resolver {
	c := r.clone()
	if name == "" {
		name = DefaultModulesDir
	}
	c.modulesDir = name
	return c
}

// PreserveSymlinks returns a Resolver that either keeps symlinked path
// components in results (true) or replaces them with their targets (false).
func (r *Resolver) PreserveSymlinks(preserve bool) *Resolver {
	c := r.clone()
	c.preserveSymlinks = preserve
	return c
}

// StrictManifests returns a Resolver that fails with ErrInvalidManifest on
// an undecodable package.json instead of treating it as absent.
func (r *Resolver) StrictManifests(strict bool) *Resolver {
	c := r.clone()
	c.strictManifests = strict
	return c
}

// WithFileSystem returns a Resolver backed by filesystem.
func (r *Resolver) WithFileSystem(filesystem nrfs.FileSystem) *Resolver {
	c := r.clone()
	c.fs = filesystem
	return c
}

// BaseDir returns the configured base directory, empty for the working directory.
func (r *Resolver) BaseDir() string { return r.baseDir }

// Extensions returns the extensions tried, in order.
func (r *Resolver) Extensions() []string { return slices.Clone(r.extensions) }

// MainFields returns the package.json fields consulted, in order.
func (r *Resolver) MainFields() []string { return slices.Clone(r.mainFields) }

// ModulesDir returns the dependency directory name.
func (r *Resolver) ModulesDir() string { return r.modulesDir }

// PreservesSymlinks reports whether symlinked components are kept in results.
func (r *Resolver) PreservesSymlinks() bool { return r.preserveSymlinks }

// Resolve resolves spec to a file.
//
// Core module names resolve to themselves without touching the filesystem.
// Absolute and relative specifiers are resolved as a file, then as a
// directory. Bare specifiers are searched in the dependency directory of
// the base directory and each of its ancestors.
//
// Failures are *Error values matching ErrNotFound, ErrIO or, with strict
// manifests, ErrInvalidManifest.
func (r *Resolver) Resolve(spec string) (*Resolution, error) {
	parsed := specifier.Parse(spec)
	if parsed.IsCore() {
		return &Resolution{Specifier: spec, Path: spec, Kind: specifier.KindCore}, nil
	}

	if spec == "" {
		return nil, &Error{Specifier: spec, BaseDir: r.baseDir, Kind: parsed.Kind, Err: ErrEmptySpecifier}
	}

	base, err := r.resolveBaseDir()
	if err != nil {
		return nil, r.wrap(parsed, r.baseDir, err)
	}

	probe := r.probeFor(parsed)
	var found string
	switch parsed.Kind {
	case specifier.KindAbsolute:
		found, err = probe(filepath.Clean(spec))
	case specifier.KindRelative:
		found, err = probe(filepath.Join(base, spec))
	default:
		found, err = r.resolveModules(spec, base, probe)
	}
	if err == nil && found != "" {
		found, err = r.finalize(found)
	}
	if err != nil {
		return nil, r.wrap(parsed, base, err)
	}
	if found == "" {
		return nil, &Error{Specifier: spec, BaseDir: base, Kind: parsed.Kind, Err: ErrNotFound}
	}

	return &Resolution{Specifier: spec, Path: found, Kind: parsed.Kind}, nil
}

// resolveBaseDir returns the absolute base directory, dereferenced when
// symlinks are resolved.
func (r *Resolver) resolveBaseDir() (string, error) {
	dir := r.baseDir
	if dir == "" || !filepath.IsAbs(dir) {
		wd, err := r.fs.Getwd()
		if err != nil {
			return "", newIOError(".", err)
		}
		dir = filepath.Join(wd, dir)
	}
	dir = filepath.Clean(dir)

	if r.preserveSymlinks {
		return dir, nil
	}
	realPath, err := r.fs.EvalSymlinks(dir)
	if err != nil {
		// a missing base directory simply resolves nothing
		if nrfs.IsNotExist(err) {
			return dir, nil
		}
		return "", newIOError(dir, err)
	}
	return realPath, nil
}

// finalize applies the symlink policy to a found path and cleans it.
func (r *Resolver) finalize(path string) (string, error) {
	if r.preserveSymlinks {
		return filepath.Clean(path), nil
	}
	realPath, err := r.fs.EvalSymlinks(path)
	if err != nil {
		// removed between the probe and now
		if nrfs.IsNotExist(err) {
			return "", nil
		}
		return "", newIOError(path, err)
	}
	return filepath.Clean(realPath), nil
}

func (r *Resolver) wrap(parsed *specifier.Specifier, base string, err error) error {
	e := &Error{Specifier: parsed.Raw, BaseDir: base, Kind: parsed.Kind}
	var ioe *ioError
	if errors.As(err, &ioe) {
		e.Err = ioe.sentinel
		e.Path = ioe.path
		e.Cause = ioe.cause
		return e
	}
	e.Err = ErrIO
	e.Cause = err
	return e
}

// Resolve resolves spec from the process working directory with default options.
func Resolve(spec string) (*Resolution, error) {
	return New().Resolve(spec)
}

// ResolveFrom resolves spec from baseDir with default options.
func ResolveFrom(spec, baseDir string) (*Resolution, error) {
	return New().WithBaseDir(baseDir).Resolve(spec)
}

// IsCoreModule reports whether name is a Node.js built-in module.
func IsCoreModule(name string) bool {
	return core.IsCoreModule(name)
}
