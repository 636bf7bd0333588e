// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdkit Authors

// Package report collects generation run statistics and renders the
// terminal summary.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Stats accumulates the outcome of one generation run.
type Stats struct {
	start time.Time

	FilesScanned int
	FilesSuccess int
	FilesSkipped int // documents with no schemas
	FilesFailed  int
	ClassesFound int

	Errors []string
}

// NewStats starts a new run.
func NewStats() *Stats {
	return &Stats{start: time.Now()}
}

// LogError records a per-file failure.
func (s *Stats) LogError(file string, err error) {
	s.FilesFailed++
	s.Errors = append(s.Errors, fmt.Sprintf("[FAIL] %s: %v", file, err))
}

// Failed reports whether any file failed during the run.
func (s *Stats) Failed() bool {
	return s.FilesFailed > 0
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	ruleStyle  = lipgloss.NewStyle().Faint(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Render returns the formatted run summary.
func (s *Stats) Render() string {
	rule := ruleStyle.Render(strings.Repeat("-", 44))

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Schema to GDScript conversion report") + "\n")
	sb.WriteString(rule + "\n")
	fmt.Fprintf(&sb, "  duration       %.2fs\n", time.Since(s.start).Seconds())
	fmt.Fprintf(&sb, "  files scanned  %d\n", s.FilesScanned)
	fmt.Fprintf(&sb, "  files success  %s\n", okStyle.Render(fmt.Sprintf("%d", s.FilesSuccess)))
	fmt.Fprintf(&sb, "  files skipped  %s (no schemas found)\n", warnStyle.Render(fmt.Sprintf("%d", s.FilesSkipped)))
	fmt.Fprintf(&sb, "  files failed   %s\n", errStyle.Render(fmt.Sprintf("%d", s.FilesFailed)))
	fmt.Fprintf(&sb, "  classes found  %d\n", s.ClassesFound)
	sb.WriteString(rule + "\n")

	if len(s.Errors) == 0 {
		sb.WriteString(okStyle.Render("No errors detected.") + "\n")
		return sb.String()
	}

	sb.WriteString(errStyle.Render("Errors:") + "\n")
	for _, e := range s.Errors {
		sb.WriteString("  " + e + "\n")
	}
	return sb.String()
}
