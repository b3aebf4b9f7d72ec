/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolve

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"

	"bennypowers.dev/noderesolve/internal/logger"
	"bennypowers.dev/noderesolve/internal/mapfs"
	resolvelib "bennypowers.dev/noderesolve/resolve"
)

func newTestResolver(t *testing.T) *resolvelib.Resolver {
	t.Helper()
	logger.SetOutput(io.Discard)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	mfs := mapfs.New()
	mfs.AddFile("/project/node_modules/pkg/index.js", "", 0644)
	mfs.AddFile("/project/node_modules/pkg/package.json", `{"module":"esm.js"}`, 0644)
	mfs.AddFile("/project/node_modules/pkg/esm.js", "", 0644)
	mfs.AddFile("/project/src/app.js", "", 0644)
	return resolvelib.New().WithFileSystem(mfs).WithBaseDir("/project")
}

func TestResolveAll(t *testing.T) {
	r := newTestResolver(t)

	results := resolveAll(r, []string{"pkg", "fs", "./src/app", "missing"})
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}

	if results[0].Path != "/project/node_modules/pkg/index.js" || results[0].Kind != "bare" {
		t.Errorf("unexpected result for pkg: %+v", results[0])
	}
	if !results[1].Core || results[1].Kind != "core" {
		t.Errorf("expected fs to be core: %+v", results[1])
	}
	if results[2].Path != "/project/src/app.js" || results[2].Kind != "relative" {
		t.Errorf("unexpected result for ./src/app: %+v", results[2])
	}
	if results[3].Error == "" || results[3].Path != "" {
		t.Errorf("expected missing to fail: %+v", results[3])
	}
	if failed := countFailed(results); failed != 1 {
		t.Errorf("expected 1 failure, got %d", failed)
	}
}

func TestSettings_Apply(t *testing.T) {
	r := newTestResolver(t)
	preserve := false

	s := settings{
		mainFields:       []string{"module", "main"},
		extensions:       []string{"js"},
		preserveSymlinks: &preserve,
	}
	applied := s.apply(r)

	if applied.PreservesSymlinks() {
		t.Error("expected symlinks to be resolved")
	}
	res, err := applied.Resolve("pkg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Path != "/project/node_modules/pkg/esm.js" {
		t.Errorf("Path = %q, want /project/node_modules/pkg/esm.js", res.Path)
	}

	if empty := (settings{}).apply(r); empty.BaseDir() != "/project" || len(empty.MainFields()) != 1 {
		t.Errorf("empty settings must not change the resolver")
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	writeText(&buf, []result{
		{Specifier: "pkg", Path: "/p/index.js"},
		{Specifier: "fs", Path: "fs", Core: true},
		{Specifier: "missing", Error: "not found"},
	})

	want := "pkg\t/p/index.js\nfs\t(core)\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, []result{{Specifier: "fs", Kind: "core", Path: "fs", Core: true}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if len(decoded) != 1 || decoded[0]["core"] != true || decoded[0]["specifier"] != "fs" {
		t.Errorf("unexpected JSON: %s", buf.String())
	}
	if _, ok := decoded[0]["error"]; ok {
		t.Error("expected error to be omitted")
	}
}
