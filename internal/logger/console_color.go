package logger

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// colorScheme defines consistent colors for different metric types.
// Green: success/positive metrics
// Yellow: warning metrics
// Cyan: labels and identifiers
type colorScheme struct {
	success *color.Color
	warn    *color.Color
	label   *color.Color
	value   *color.Color
}

// newColorScheme creates the standard color scheme for metrics.
func newColorScheme() *colorScheme {
	return &colorScheme{
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		label:   color.New(color.FgCyan),
		value:   color.New(color.FgWhite),
	}
}

// formatColorizedMetric formats a single metric with colorized label and value.
// Format: "label: value"
func formatColorizedMetric(label string, value interface{}, scheme *colorScheme) string {
	labelColored := scheme.label.Sprint(label)
	valueColored := scheme.value.Sprintf("%v", value)
	return fmt.Sprintf("%s: %s", labelColored, valueColored)
}

// formatColorizedSummary formats summary figures with color coding.
// Matches are green, skipped entries yellow when there are any.
// Format: "files: N, matched: N, lines: N, skipped: N"
func formatColorizedSummary(s Summary) string {
	scheme := newColorScheme()
	parts := []string{formatColorizedMetric("files", s.FilesScanned, scheme)}

	if s.FilesMatched > 0 {
		parts = append(parts, fmt.Sprintf("%s: %s", scheme.success.Sprint("matched"), scheme.value.Sprintf("%d", s.FilesMatched)))
		parts = append(parts, fmt.Sprintf("%s: %s", scheme.success.Sprint("lines"), scheme.value.Sprintf("%d", s.LinesMatched)))
	} else {
		parts = append(parts, formatColorizedMetric("matched", s.FilesMatched, scheme))
		parts = append(parts, formatColorizedMetric("lines", s.LinesMatched, scheme))
	}

	if s.Skipped > 0 {
		parts = append(parts, fmt.Sprintf("%s: %s", scheme.warn.Sprint("skipped"), scheme.warn.Sprintf("%d", s.Skipped)))
	} else {
		parts = append(parts, formatColorizedMetric("skipped", s.Skipped, scheme))
	}

	return strings.Join(parts, ", ")
}

// formatPlainSummary formats summary figures without color.
func formatPlainSummary(s Summary) string {
	return fmt.Sprintf("files: %d, matched: %d, lines: %d, skipped: %d",
		s.FilesScanned, s.FilesMatched, s.LinesMatched, s.Skipped)
}
