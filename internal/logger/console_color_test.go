package logger

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

// TestFormatColorizedSummary verifies metric labels survive colorization
func TestFormatColorizedSummary(t *testing.T) {
	original := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = original }()

	got := formatColorizedSummary(Summary{FilesScanned: 4, FilesMatched: 2, LinesMatched: 5, Skipped: 1})
	expected := "files: 4, matched: 2, lines: 5, skipped: 1"
	if got != expected {
		t.Errorf("formatColorizedSummary() = %q, want %q", got, expected)
	}
}

// TestFormatColorizedSummaryWithColor verifies ANSI codes are emitted when enabled
func TestFormatColorizedSummaryWithColor(t *testing.T) {
	original := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = original }()

	got := formatColorizedSummary(Summary{FilesScanned: 1, FilesMatched: 1, LinesMatched: 1, Skipped: 2})
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected ANSI codes, got %q", got)
	}
	for _, label := range []string{"files", "matched", "lines", "skipped"} {
		if !strings.Contains(got, label) {
			t.Errorf("missing label %q in %q", label, got)
		}
	}
}

// TestFormatPlainSummary verifies the uncolored summary
func TestFormatPlainSummary(t *testing.T) {
	got := formatPlainSummary(Summary{})
	if got != "files: 0, matched: 0, lines: 0, skipped: 0" {
		t.Errorf("formatPlainSummary() = %q", got)
	}
}
