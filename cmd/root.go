/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for noderesolve.
package cmd

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/noderesolve/cmd/builtins"
	"bennypowers.dev/noderesolve/cmd/resolve"
	"bennypowers.dev/noderesolve/cmd/version"
	"bennypowers.dev/noderesolve/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "noderesolve",
	Short: "Resolve require() specifiers to file paths",
	Long:  `noderesolve resolves module specifiers to files the way Node.js require() does, without running any code.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("quiet") {
			logger.SetOutput(io.Discard)
		}
		logger.SetVerbose(viper.GetBool("verbose"))
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print debug output to stderr")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress warnings")

	viper.SetEnvPrefix("NODERESOLVE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(builtins.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
