// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdkit Authors

// Package watch regenerates output when schema definition files change.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// debounce coalesces editor write bursts into one regeneration.
const debounce = 250 * time.Millisecond

// schemaExts are the file extensions that trigger regeneration.
var schemaExts = []string{".json", ".yaml", ".yml"}

// Watcher watches a schema directory and invokes a callback when
// schema files change.
type Watcher struct {
	watcher  *fsnotify.Watcher
	log      zerolog.Logger
	onChange func()
}

// New creates a Watcher. onChange is invoked after each debounced batch
// of schema file events.
func New(log zerolog.Logger, onChange func()) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	return &Watcher{watcher: w, log: log, onChange: onChange}, nil
}

// AddDirectory recursively adds a directory tree to the watcher.
func (w *Watcher) AddDirectory(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if strings.HasPrefix(info.Name(), ".") && path != dir {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", path, err)
		}
		return nil
	})
}

// Start blocks, dispatching onChange until ctx is canceled.
func (w *Watcher) Start(ctx context.Context) error {
	var timer *time.Timer
	fire := make(chan struct{}, 1)

	schedule := func() {
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(debounce, func() {
			select {
			case fire <- struct{}{}:
			default:
			}
		})
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-fire:
			w.onChange()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher channel closed")
			}

			if isSchemaFile(event.Name) {
				w.log.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("schema change")
				schedule()
			}

			// Newly created subdirectories must be picked up too.
			if event.Op&fsnotify.Create == fsnotify.Create {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.AddDirectory(event.Name); err != nil {
						w.log.Warn().Err(err).Str("dir", event.Name).Msg("failed to watch new directory")
					}
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			if err != nil {
				w.log.Warn().Err(err).Msg("watcher error")
			}
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// isSchemaFile reports whether path has a schema document extension.
func isSchemaFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range schemaExts {
		if ext == want {
			return true
		}
	}
	return false
}
