// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdkit Authors

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/e28099005-del/Godot-Develop-Tool-Kit/internal/session"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gdkit",
		Short: "Generate GDScript data classes from schema definitions",
	}

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())

	generateCmd := newGenerateCmd()
	generateCmd.PreRunE = session.PreRunLoad
	rootCmd.AddCommand(generateCmd)

	watchCmd := newWatchCmd()
	watchCmd.PreRunE = session.PreRunLoad
	rootCmd.AddCommand(watchCmd)

	return rootCmd
}
