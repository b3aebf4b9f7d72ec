/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package builtins provides the builtins command for noderesolve.
package builtins

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/noderesolve/core"
)

// Cmd is the builtins cobra command.
var Cmd = &cobra.Command{
	Use:   "builtins [names...]",
	Short: "List or check Node.js built-in modules",
	Long: `With no arguments, list every built-in module name.
With arguments, report whether each name is a built-in and fail if any is not.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		for _, name := range core.Names() {
			fmt.Fprintln(out, name)
		}
		return nil
	}
	if missing := check(out, args); missing > 0 {
		return fmt.Errorf("%d of %d names are not built-in modules", missing, len(args))
	}
	return nil
}

// check prints one line per name and returns how many are not built-ins.
func check(w io.Writer, names []string) int {
	missing := 0
	for _, name := range names {
		if core.IsCoreModule(name) || core.IsSchemeCoreModule(name) {
			fmt.Fprintf(w, "%s\tbuiltin\n", name)
			continue
		}
		fmt.Fprintf(w, "%s\tnot builtin\n", name)
		missing++
	}
	return missing
}
