/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package core

import (
	"slices"
	"testing"
)

func TestIsCoreModule(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"events", true},
		{"stream", true},
		{"fs/promises", true},
		{"./events", false},
		{"acorn", false},
		{"Events", false},
		{"node:fs", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCoreModule(tt.name); got != tt.want {
				t.Errorf("IsCoreModule(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestIsSchemeCoreModule(t *testing.T) {
	if !IsSchemeCoreModule("node:fs") {
		t.Error("expected node:fs to be a core module")
	}
	if IsSchemeCoreModule("fs") {
		t.Error("expected bare fs to need the scheme")
	}
	if IsSchemeCoreModule("node:left-pad") {
		t.Error("expected node:left-pad not to be a core module")
	}
}

func TestIsSchemeCoreModule_SchemeOnly(t *testing.T) {
	for _, name := range []string{"node:test", "node:sqlite", "node:sea", "node:test/reporters"} {
		if !IsSchemeCoreModule(name) {
			t.Errorf("expected %s to be a core module", name)
		}
	}
	for _, name := range []string{"test", "sqlite", "sea"} {
		if IsCoreModule(name) {
			t.Errorf("expected bare %s not to be a core module", name)
		}
	}
}

func TestNames_SortedCopy(t *testing.T) {
	names := Names()
	if !slices.IsSorted(names) {
		t.Error("expected names to be sorted")
	}
	if len(names) != len(builtins)+len(schemeOnly) {
		t.Errorf("len(Names()) = %d, want %d", len(names), len(builtins)+len(schemeOnly))
	}
	if !slices.Contains(names, "node:test") {
		t.Error("expected scheme-only node:test to be listed")
	}

	names[0] = "mutated"
	if IsCoreModule("mutated") {
		t.Error("mutating the returned slice must not change the registry")
	}
}
