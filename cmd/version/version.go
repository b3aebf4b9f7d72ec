/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides the version command for noderesolve.
package version

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/noderesolve/core"
	"bennypowers.dev/noderesolve/internal/version"
	resolvelib "bennypowers.dev/noderesolve/resolve"
)

// Cmd is the version cobra command.
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and resolver defaults",
	Long: `Print the noderesolve version together with the defaults a resolver
starts from: the extensions tried, the package.json fields consulted, the
dependency directory searched, the symlink mode, and how many built-in
module names are recognized.`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
}

// report is the version output.
type report struct {
	Version            string   `json:"version"`
	GitCommit          string   `json:"gitCommit"`
	BuildTime          string   `json:"buildTime"`
	Extensions         []string `json:"extensions"`
	MainFields         []string `json:"mainFields"`
	ModulesDir         string   `json:"modulesDir"`
	PreserveSymlinks   bool     `json:"preserveSymlinks"`
	BuiltinModuleCount int      `json:"builtinModuleCount"`
}

func newReport() report {
	info := version.Info()
	r := resolvelib.New()
	return report{
		Version:            info["version"],
		GitCommit:          info["gitCommit"],
		BuildTime:          info["buildTime"],
		Extensions:         r.Extensions(),
		MainFields:         r.MainFields(),
		ModulesDir:         r.ModulesDir(),
		PreserveSymlinks:   r.PreservesSymlinks(),
		BuiltinModuleCount: len(core.Names()),
	}
}

func run(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("error reading format flag: %w", err)
	}
	return write(cmd.OutOrStdout(), format, newReport())
}

func write(w io.Writer, format string, rep report) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling version info: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case "text":
		fmt.Fprintf(w, "noderesolve %s\n", version.Full())
		fmt.Fprintf(w, "extensions:        %v\n", rep.Extensions)
		fmt.Fprintf(w, "main fields:       %v\n", rep.MainFields)
		fmt.Fprintf(w, "modules dir:       %s\n", rep.ModulesDir)
		fmt.Fprintf(w, "preserve symlinks: %v\n", rep.PreserveSymlinks)
		fmt.Fprintf(w, "builtin modules:   %d\n", rep.BuiltinModuleCount)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	return nil
}
