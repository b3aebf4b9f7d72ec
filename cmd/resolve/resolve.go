/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve provides the resolve command for noderesolve.
package resolve

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/noderesolve/config"
	"bennypowers.dev/noderesolve/fs"
	"bennypowers.dev/noderesolve/internal/logger"
	resolvelib "bennypowers.dev/noderesolve/resolve"
	"bennypowers.dev/noderesolve/specifier"
)

// Cmd is the resolve cobra command.
var Cmd = &cobra.Command{
	Use:   "resolve [specifiers...]",
	Short: "Resolve specifiers to file paths",
	Long: `Resolve each specifier the way require() would and print the resulting path.

Options come from .config/noderesolve.{yaml,yml,json} in the working directory,
NODERESOLVE_* environment variables, and flags, in increasing precedence.

Examples:
  # Resolve a package from the current directory
  noderesolve resolve lodash/get

  # Prefer ESM entry points and print JSON
  noderesolve resolve --main-fields module,main --format json react

  # Show where bare specifiers are searched
  noderesolve resolve --paths --basedir src`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("basedir", "b", "", "Directory to resolve from (default: working directory)")
	Cmd.Flags().StringSlice("extensions", nil, "Extensions to try, in order (default: .js,.json,.node)")
	Cmd.Flags().StringSlice("main-fields", nil, "package.json fields to try, in order (default: main)")
	Cmd.Flags().String("modules-dir", "", "Dependency directory name (default: node_modules)")
	Cmd.Flags().Bool("preserve-symlinks", true, "Keep symlinked path components instead of resolving them")
	Cmd.Flags().Bool("strict-manifests", false, "Fail on undecodable package.json files")
	Cmd.Flags().StringP("format", "f", "text", "Output format: text, json")
	Cmd.Flags().Bool("paths", false, "Print the dependency directories searched for bare specifiers")

	for _, name := range []string{"basedir", "extensions", "main-fields", "modules-dir", "preserve-symlinks", "strict-manifests"} {
		_ = viper.BindPFlag(name, Cmd.Flags().Lookup(name))
	}
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	showPaths, _ := cmd.Flags().GetBool("paths")

	filesystem := fs.NewOSFileSystem()
	root, err := filesystem.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.Load(filesystem, root)
	if err != nil {
		logger.Warn("ignoring config: %v", err)
	}
	if cfg == nil {
		cfg = config.Default()
	}

	r := settingsFromViper().apply(cfg.Resolver(filesystem, root))
	logger.Debug("base %s, extensions %v, main fields %v, modules dir %s, preserve symlinks %v",
		r.BaseDir(), r.Extensions(), r.MainFields(), r.ModulesDir(), r.PreservesSymlinks())

	out := cmd.OutOrStdout()
	if showPaths {
		paths, err := r.ModulePaths(r.BaseDir())
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintln(out, p)
		}
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("at least one specifier is required")
	}

	results := resolveAll(r, args)

	switch format {
	case "json":
		if err := writeJSON(out, results); err != nil {
			return err
		}
	case "text":
		writeText(out, results)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if failed := countFailed(results); failed > 0 {
		return fmt.Errorf("%d of %d specifiers could not be resolved", failed, len(results))
	}
	return nil
}

// settings holds the options set explicitly by flags or environment.
type settings struct {
	baseDir          string
	extensions       []string
	mainFields       []string
	modulesDir       string
	preserveSymlinks *bool
	strictManifests  *bool
}

func settingsFromViper() settings {
	var s settings
	if viper.IsSet("basedir") {
		s.baseDir = viper.GetString("basedir")
	}
	if viper.IsSet("extensions") {
		s.extensions = viper.GetStringSlice("extensions")
	}
	if viper.IsSet("main-fields") {
		s.mainFields = viper.GetStringSlice("main-fields")
	}
	if viper.IsSet("modules-dir") {
		s.modulesDir = viper.GetString("modules-dir")
	}
	if viper.IsSet("preserve-symlinks") {
		v := viper.GetBool("preserve-symlinks")
		s.preserveSymlinks = &v
	}
	if viper.IsSet("strict-manifests") {
		v := viper.GetBool("strict-manifests")
		s.strictManifests = &v
	}
	return s
}

// apply overrides the options of r that were set explicitly.
func (s settings) apply(r *resolvelib.Resolver) *resolvelib.Resolver {
	if s.baseDir != "" {
		r = r.WithBaseDir(s.baseDir)
	}
	if len(s.extensions) > 0 {
		r = r.WithExtensions(s.extensions...)
	}
	if len(s.mainFields) > 0 {
		r = r.WithMainFields(s.mainFields...)
	}
	if s.modulesDir != "" {
		r = r.WithModulesDir(s.modulesDir)
	}
	if s.preserveSymlinks != nil {
		r = r.PreserveSymlinks(*s.preserveSymlinks)
	}
	if s.strictManifests != nil {
		r = r.StrictManifests(*s.strictManifests)
	}
	return r
}

type result struct {
	Specifier string `json:"specifier"`
	Kind      string `json:"kind"`
	Path      string `json:"path,omitempty"`
	Core      bool   `json:"core,omitempty"`
	Error     string `json:"error,omitempty"`
}

func resolveAll(r *resolvelib.Resolver, specs []string) []result {
	results := make([]result, 0, len(specs))
	for _, spec := range specs {
		res, err := r.Resolve(spec)
		if err != nil {
			logger.Warn("%v", err)
			results = append(results, result{
				Specifier: spec,
				Kind:      specifier.Parse(spec).Kind.String(),
				Error:     err.Error(),
			})
			continue
		}
		logger.Debug("%s -> %s", spec, res.Path)
		results = append(results, result{
			Specifier: spec,
			Kind:      res.Kind.String(),
			Path:      res.Path,
			Core:      res.IsCore(),
		})
	}
	return results
}

func countFailed(results []result) int {
	failed := 0
	for _, res := range results {
		if res.Error != "" {
			failed++
		}
	}
	return failed
}

func writeText(w io.Writer, results []result) {
	for _, res := range results {
		switch {
		case res.Error != "":
			continue
		case res.Core:
			fmt.Fprintf(w, "%s\t(core)\n", res.Specifier)
		default:
			fmt.Fprintf(w, "%s\t%s\n", res.Specifier, res.Path)
		}
	}
}

func writeJSON(w io.Writer, results []result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling results: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
