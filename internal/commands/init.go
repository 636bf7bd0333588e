// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdkit Authors

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/e28099005-del/Godot-Develop-Tool-Kit/internal/config"
	"github.com/e28099005-del/Godot-Develop-Tool-Kit/internal/prompts"
	"github.com/e28099005-del/Godot-Develop-Tool-Kit/internal/session"
)

type initOptions struct {
	schemas        string
	output         string
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new gdkit project",
		Long:  `Initialize a new gdkit project with a gdkit.yaml configuration file and a schema directory.`,
		Example: `  # Interactive mode
  gdkit init

  # Non-interactive
  gdkit init --schemas schemas --output godot_project/generated --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.schemas, "schemas", "s", config.DefaultSchemasDir, "Schema definition directory")
	cmd.Flags().StringVarP(&opts.output, "output", "o", config.DefaultOutputDir, "Generated script output directory")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, session.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return errors.New("gdkit.yaml already exists; project already initialized")
	}

	if !opts.nonInteractive {
		if err := prompts.RunInitForm(&opts.schemas, &opts.output); err != nil {
			return err
		}
	}

	cfg := config.Config{
		Version: config.CurrentConfigVersion,
		Schemas: opts.schemas,
		Output:  opts.output,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	schemasDir := opts.schemas
	if !filepath.IsAbs(schemasDir) {
		schemasDir = filepath.Join(cwd, schemasDir)
	}
	if err := os.MkdirAll(schemasDir, 0o750); err != nil {
		return fmt.Errorf("failed to create schema directory: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}
	fmt.Println("Initialization completed")

	return nil
}
