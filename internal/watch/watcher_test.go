// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdkit Authors

package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestIsSchemaFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"weapons.json", true},
		{"combat/units.yaml", true},
		{"units.YML", true},
		{"readme.md", false},
		{"weapons.json.swp", false},
		{"noext", false},
	}
	for _, tt := range tests {
		if got := isSchemaFile(tt.path); got != tt.want {
			t.Errorf("isSchemaFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestWatcher_FiresOnSchemaChange(t *testing.T) {
	dir := t.TempDir()

	var fired atomic.Int32
	w, err := New(zerolog.Nop(), func() { fired.Add(1) })
	require.NoError(t, err)
	defer w.Close() //nolint:errcheck

	require.NoError(t, w.AddDirectory(dir))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = w.Start(ctx)
		close(done)
	}()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "weapons.json"), []byte(`{}`), 0o600))

	require.Eventually(t, func() bool {
		return fired.Load() > 0
	}, 3*time.Second, 20*time.Millisecond, "onChange was not invoked after a schema write")

	cancel()
	<-done
}

func TestWatcher_IgnoresNonSchemaFiles(t *testing.T) {
	dir := t.TempDir()

	var fired atomic.Int32
	w, err := New(zerolog.Nop(), func() { fired.Add(1) })
	require.NoError(t, err)
	defer w.Close() //nolint:errcheck

	require.NoError(t, w.AddDirectory(dir))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Start(ctx) }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))

	time.Sleep(2 * debounce)
	require.Zero(t, fired.Load(), "onChange fired for a non-schema file")
}
