// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdkit Authors

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/e28099005-del/Godot-Develop-Tool-Kit/internal/config"
)

var (
	// ErrNotInitialized indicates no gdkit.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in a gdkit project (gdkit.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSchemasNotFound indicates the schema directory referenced by config doesn't exist.
	ErrSchemasNotFound = errors.New("schema directory not found")
)

// ConfigFileName is the name of the gdkit configuration file.
const ConfigFileName = "gdkit.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration and directory paths.
type Context struct {
	// Config is the loaded project configuration.
	Config *config.Config

	// SchemasDir is the absolute path of the schema definition directory.
	SchemasDir string

	// OutputDir is the absolute path of the generated script output directory.
	OutputDir string
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the gdkit Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, ConfigFileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	schemasDir := cfg.Schemas
	if !filepath.IsAbs(schemasDir) {
		schemasDir = filepath.Join(cwd, schemasDir)
	}
	if info, statErr := os.Stat(schemasDir); statErr != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrSchemasNotFound, cfg.Schemas)
	}

	outputDir := cfg.Output
	if !filepath.IsAbs(outputDir) {
		outputDir = filepath.Join(cwd, outputDir)
	}

	gdCtx := &Context{
		Config:     cfg,
		SchemasDir: schemasDir,
		OutputDir:  outputDir,
	}

	return context.WithValue(ctx, contextKey{}, gdCtx), nil
}

// From extracts the gdkit Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if gdCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return gdCtx
	}
	return nil
}
