// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdkit Authors

// Package config handles gdkit project configuration.
package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Config represents the gdkit.yaml project configuration file.
type Config struct {
	Version int    `yaml:"version"`
	Schemas string `yaml:"schemas,omitempty"` // schema definition directory
	Output  string `yaml:"output,omitempty"`  // generated script output directory
}

// Defaults for fields left empty in the config file.
const (
	DefaultSchemasDir = "schemas"
	DefaultOutputDir  = "godot_project/generated"
)

// Load reads a Config from a file path and applies defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	if cfg.Schemas == "" {
		cfg.Schemas = DefaultSchemasDir
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutputDir
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Schemas == "" {
		return errors.New("schemas directory must not be empty")
	}
	if c.Output == "" {
		return errors.New("output directory must not be empty")
	}
	return nil
}
