// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdkit Authors

package commands

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/e28099005-del/Godot-Develop-Tool-Kit/internal/extract"
	"github.com/e28099005-del/Godot-Develop-Tool-Kit/internal/gdscript"
	"github.com/e28099005-del/Godot-Develop-Tool-Kit/internal/prompts"
	"github.com/e28099005-del/Godot-Develop-Tool-Kit/internal/report"
	"github.com/e28099005-del/Godot-Develop-Tool-Kit/internal/schemadoc"
	"github.com/e28099005-del/Godot-Develop-Tool-Kit/internal/session"
)

type generateOptions struct {
	files          string
	all            bool
	output         string
	nonInteractive bool
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate GDScript classes from the project's schema definitions",
		Long: `Generate one GDScript data class per schema definition.

Schema definitions are JSON Schema documents (.json, .yaml, .yml) in the
project's schema directory. Every schema becomes a class with typed
fields, from_dict/to_dict conversion, and a get_by_id helper when the
schema declares an id field.`,
		Example: `  # Generate everything
  gdkit generate --all

  # Generate selected documents
  gdkit generate --file combat/weapons.json,items.yaml

  # Interactive selection
  gdkit generate`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.files, "file", "f", "", "Schema file(s) relative to the schema directory, comma-separated")
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "Generate all schema files")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (overrides config)")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	if opts.all && opts.files != "" {
		return fmt.Errorf("--all and --file are mutually exclusive")
	}

	fsys := os.DirFS(ctx.SchemasDir)
	available, err := listSchemaFiles(fsys)
	if err != nil {
		return fmt.Errorf("failed to scan schema directory: %w", err)
	}
	if len(available) == 0 {
		return fmt.Errorf("no schema files found in %s", ctx.SchemasDir)
	}

	selected, err := selectFiles(opts, available)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		return fmt.Errorf("no schema files selected")
	}

	outputDir := ctx.OutputDir
	if opts.output != "" {
		outputDir = opts.output
	}

	stats := report.NewStats()
	runGeneration(fsys, selected, diskWriter(outputDir), stats)

	fmt.Print(stats.Render())
	if stats.Failed() {
		return fmt.Errorf("failed to generate %d file(s)", stats.FilesFailed)
	}
	return nil
}

// selectFiles resolves the schema file selection from flags, prompting
// when interactive and nothing was chosen.
func selectFiles(opts *generateOptions, available []string) ([]string, error) {
	if opts.all {
		return available, nil
	}

	if opts.files != "" {
		known := make(map[string]bool, len(available))
		for _, f := range available {
			known[f] = true
		}
		var selected []string
		for _, f := range strings.Split(opts.files, ",") {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			if !known[f] {
				return nil, fmt.Errorf("schema file %q not found in schema directory", f)
			}
			selected = append(selected, f)
		}
		return selected, nil
	}

	if opts.nonInteractive {
		return available, nil
	}

	var selected []string
	if err := prompts.RunGenerateForm(&selected, available); err != nil {
		return nil, err
	}
	return selected, nil
}

// listSchemaFiles returns all schema document paths under the schema
// directory, sorted for deterministic processing order.
func listSchemaFiles(fsys fs.FS) ([]string, error) {
	var files []string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && p != "." {
				return fs.SkipDir
			}
			return nil
		}
		switch path.Ext(p) {
		case ".json", ".yaml", ".yml":
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// runGeneration loads, extracts, and generates every selected schema
// file, writing one .gd file per class next to its source document's
// relative directory. Failures are recorded per file; generation
// continues with the remaining files.
func runGeneration(fsys fs.FS, selected []string, write func(relPath string, data []byte) error, stats *report.Stats) {
	loader := schemadoc.NewLoader(fsys)

	for _, file := range selected {
		stats.FilesScanned++

		doc, err := loader.LoadFile(file)
		if err != nil {
			stats.LogError(file, err)
			continue
		}

		specs, err := extract.Schemas(doc)
		if err != nil {
			stats.LogError(file, err)
			continue
		}
		if len(specs) == 0 {
			stats.FilesSkipped++
			continue
		}
		stats.ClassesFound += len(specs)

		failed := false
		for _, spec := range specs {
			class := gdscript.Generate(spec)
			relPath := path.Join(path.Dir(file), class.FileName)
			if err := write(relPath, []byte(class.Source)); err != nil {
				stats.LogError(file, err)
				failed = true
				break
			}
		}
		if !failed {
			stats.FilesSuccess++
		}
	}
}

// diskWriter persists generated files under outputDir, creating
// directories as needed.
func diskWriter(outputDir string) func(relPath string, data []byte) error {
	return func(relPath string, data []byte) error {
		outFile := filepath.Join(outputDir, filepath.FromSlash(relPath))
		if err := os.MkdirAll(filepath.Dir(outFile), 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(outFile, data, 0o600); err != nil {
			return err
		}
		fmt.Printf("  %s\n", outFile)
		return nil
	}
}
