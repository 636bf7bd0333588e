// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdkit Authors

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/e28099005-del/Godot-Develop-Tool-Kit/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.Info())
		},
	}
}
