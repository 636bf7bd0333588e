// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdkit Authors

// Package prompts contains the interactive forms used by CLI commands.
package prompts

import "github.com/charmbracelet/huh"

// RunInitForm collects project settings for gdkit init.
func RunInitForm(schemas, output *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Schema definition directory").
				Value(schemas),
			huh.NewInput().
				Title("Generated script output directory").
				Value(output),
		),
	).Run()
}

// RunGenerateForm collects the schema files to generate when none were
// selected via flags. files holds schema paths relative to the schema
// directory.
func RunGenerateForm(selected *[]string, files []string) error {
	options := make([]huh.Option[string], len(files))
	for i, f := range files {
		options[i] = huh.NewOption(f, f).Selected(true)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Schema files").
				Options(options...).
				Value(selected),
		),
	).Run()
}
