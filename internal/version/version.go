// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdkit Authors

// Package version provides build-time version information.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at build time via ldflags; release builds override all three.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func init() {
	// "go install module@version" builds carry no ldflags; recover what
	// the module and VCS stamps know.
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if Commit == "none" && len(setting.Value) >= 7 {
				Commit = setting.Value[:7]
			}
		case "vcs.time":
			if Date == "unknown" {
				Date = setting.Value
			}
		}
	}
}

// Info returns the full version line printed by the version command.
func Info() string {
	return fmt.Sprintf("gdkit version %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, runtime.Version())
}

// Short returns just the version string.
func Short() string {
	return Version
}
