// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdkit Authors

// Package internal wires the CLI together.
package internal

import (
	"context"

	"github.com/e28099005-del/Godot-Develop-Tool-Kit/internal/commands"
)

// Run executes the root command.
func Run(ctx context.Context) error {
	rootCmd := commands.NewRootCmd()
	return rootCmd.ExecuteContext(ctx)
}
