/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package core holds the registry of Node.js built-in module names.
//
// Built-in modules are resolved by the runtime itself, so a specifier that
// names one never touches the filesystem.
package core

import (
	"slices"
	"strings"
)

// Scheme is the prefix Node accepts in front of any built-in module name.
const Scheme = "node:"

// builtins mirrors require('module').builtinModules, minus the private
// underscore-prefixed names.
var builtins = map[string]struct{}{
	"assert":              {},
	"assert/strict":       {},
	"async_hooks":         {},
	"buffer":              {},
	"child_process":       {},
	"cluster":             {},
	"console":             {},
	"constants":           {},
	"crypto":              {},
	"dgram":               {},
	"diagnostics_channel": {},
	"dns":                 {},
	"dns/promises":        {},
	"domain":              {},
	"events":              {},
	"fs":                  {},
	"fs/promises":         {},
	"http":                {},
	"http2":               {},
	"https":               {},
	"inspector":           {},
	"inspector/promises":  {},
	"module":              {},
	"net":                 {},
	"os":                  {},
	"path":                {},
	"path/posix":          {},
	"path/win32":          {},
	"perf_hooks":          {},
	"process":             {},
	"punycode":            {},
	"querystring":         {},
	"readline":            {},
	"readline/promises":   {},
	"repl":                {},
	"stream":              {},
	"stream/consumers":    {},
	"stream/promises":     {},
	"stream/web":          {},
	"string_decoder":      {},
	"sys":                 {},
	"timers":              {},
	"timers/promises":     {},
	"tls":                 {},
	"trace_events":        {},
	"tty":                 {},
	"url":                 {},
	"util":                {},
	"util/types":          {},
	"v8":                  {},
	"vm":                  {},
	"wasi":                {},
	"worker_threads":      {},
	"zlib":                {},
}

// schemeOnly are built-ins that only exist behind the node: scheme;
// a bare "test" is an ordinary package.
var schemeOnly = map[string]struct{}{
	"sea":            {},
	"sqlite":         {},
	"test":           {},
	"test/reporters": {},
}

// IsCoreModule reports whether name is a built-in module name.
// The match is exact and case-sensitive; "./events" and "Events" are not core.
func IsCoreModule(name string) bool {
	_, ok := builtins[name]
	return ok
}

// IsSchemeCoreModule reports whether spec is a built-in name behind the
// node: scheme, e.g. "node:fs" or the scheme-only "node:test".
func IsSchemeCoreModule(spec string) bool {
	name, ok := strings.CutPrefix(spec, Scheme)
	if !ok {
		return false
	}
	if _, only := schemeOnly[name]; only {
		return true
	}
	return IsCoreModule(name)
}

// Names returns the registry in sorted order. Scheme-only built-ins are
// listed with their node: prefix.
func Names() []string {
	names := make([]string, 0, len(builtins)+len(schemeOnly))
	for name := range builtins {
		names = append(names, name)
	}
	for name := range schemeOnly {
		names = append(names, Scheme+name)
	}
	slices.Sort(names)
	return names
}
