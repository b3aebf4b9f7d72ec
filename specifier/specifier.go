/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package specifier classifies require() specifiers.
package specifier

import (
	"path/filepath"
	"regexp"
	"strings"

	"bennypowers.dev/noderesolve/core"
)

// Kind indicates the type of specifier.
type Kind int

const (
	// KindBare is a package name, optionally followed by a subpath.
	KindBare Kind = iota
	// KindCore is a built-in module handled by the runtime.
	KindCore
	// KindAbsolute is an absolute filesystem path.
	KindAbsolute
	// KindRelative is a path starting with ./ or ../.
	KindRelative
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindCore:
		return "core"
	case KindAbsolute:
		return "absolute"
	case KindRelative:
		return "relative"
	default:
		return "bare"
	}
}

// Specifier represents a classified specifier.
type Specifier struct {
	// Kind is the type of specifier.
	Kind Kind

	// Package is the package name for bare specifiers (e.g., "@scope/pkg" or "pkg").
	Package string

	// Subpath is the path after the package name, without a leading slash.
	Subpath string

	// Raw is the original specifier string.
	Raw string
}

// barePattern matches @scope/pkg/path, pkg/path, or bare pkg
var barePattern = regexp.MustCompile(`^(@[^/]+/[^/]+|[^/]+)(/.*)?$`)

// Parse classifies a specifier string. It never touches the filesystem, so
// a core module name cannot be shadowed by a file of the same name.
func Parse(spec string) *Specifier {
	if core.IsCoreModule(spec) || core.IsSchemeCoreModule(spec) {
		return &Specifier{Kind: KindCore, Raw: spec}
	}

	if filepath.IsAbs(spec) {
		return &Specifier{Kind: KindAbsolute, Raw: spec}
	}

	if isRelative(spec) {
		return &Specifier{Kind: KindRelative, Raw: spec}
	}

	parsed := &Specifier{Kind: KindBare, Package: spec, Raw: spec}
	if matches := barePattern.FindStringSubmatch(spec); len(matches) == 3 {
		parsed.Package = matches[1]
		parsed.Subpath = strings.TrimPrefix(matches[2], "/")
	}
	return parsed
}

func isRelative(spec string) bool {
	return spec == "." || spec == ".." ||
		strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../")
}

// IsCore returns true if this is a built-in module.
func (s *Specifier) IsCore() bool {
	return s.Kind == KindCore
}

// IsPath returns true for absolute and relative specifiers.
func (s *Specifier) IsPath() bool {
	return s.Kind == KindAbsolute || s.Kind == KindRelative
}

// IsDirectoryOnly returns true when the specifier can only name a
// directory: it ends in a slash or its last segment is "." or "..".
func (s *Specifier) IsDirectoryOnly() bool {
	raw := s.Raw
	return strings.HasSuffix(raw, "/") ||
		raw == "." || raw == ".." ||
		strings.HasSuffix(raw, "/.") || strings.HasSuffix(raw, "/..")
}

// IsBare returns true if this is a package specifier.
func (s *Specifier) IsBare() bool {
	return s.Kind == KindBare
}
