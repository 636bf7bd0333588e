// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdkit Authors

package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/e28099005-del/Godot-Develop-Tool-Kit/internal/report"
	"github.com/e28099005-del/Godot-Develop-Tool-Kit/internal/session"
	"github.com/e28099005-del/Godot-Develop-Tool-Kit/internal/watch"
)

type watchOptions struct {
	verbose bool
}

func newWatchCmd() *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate GDScript classes whenever schema definitions change",
		Long: `Watch the project's schema directory and regenerate all classes on
every change. Runs until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log individual file events")

	return cmd
}

func runWatch(cmd *cobra.Command, opts *watchOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	level := zerolog.InfoLevel
	if opts.verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	regenerate := func() {
		stats := report.NewStats()
		runGeneration(os.DirFS(ctx.SchemasDir), mustListSchemaFiles(ctx.SchemasDir, log), diskWriter(ctx.OutputDir), stats)
		log.Info().
			Int("scanned", stats.FilesScanned).
			Int("success", stats.FilesSuccess).
			Int("failed", stats.FilesFailed).
			Int("classes", stats.ClassesFound).
			Msg("generation pass complete")
		for _, e := range stats.Errors {
			log.Error().Msg(e)
		}
	}

	watcher, err := watch.New(log, regenerate)
	if err != nil {
		return err
	}
	defer watcher.Close() //nolint:errcheck

	if err := watcher.AddDirectory(ctx.SchemasDir); err != nil {
		return err
	}

	log.Info().Str("dir", ctx.SchemasDir).Msg("watching for schema changes")
	regenerate()

	sigCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := watcher.Start(sigCtx); err != nil && sigCtx.Err() == nil {
		return err
	}
	log.Info().Msg("stopped")
	return nil
}

func mustListSchemaFiles(dir string, log zerolog.Logger) []string {
	files, err := listSchemaFiles(os.DirFS(dir))
	if err != nil {
		log.Error().Err(err).Msg("failed to scan schema directory")
		return nil
	}
	return files
}
