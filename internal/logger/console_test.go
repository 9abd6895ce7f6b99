package logger

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

// TestNewConsoleLogger verifies the constructor creates a ConsoleLogger with the provided writer.
func TestNewConsoleLogger(t *testing.T) {
	t.Run("with valid writer", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewConsoleLogger(buf, "info")

		if logger == nil {
			t.Fatal("expected non-nil logger")
		}
		if logger.writer != buf {
			t.Error("writer not set correctly")
		}
		if logger.logLevel != "info" {
			t.Errorf("expected log level %q, got %q", "info", logger.logLevel)
		}
		if logger.colorOutput {
			t.Error("expected color to be disabled for a buffer")
		}
	})

	t.Run("with nil writer", func(t *testing.T) {
		logger := NewConsoleLogger(nil, "info")
		if logger == nil {
			t.Fatal("expected non-nil logger even with nil writer")
		}
		// Must not panic
		logger.LogError("discarded")
		logger.LogSummary(Summary{})
	})

	t.Run("invalid level defaults to info", func(t *testing.T) {
		logger := NewConsoleLogger(&bytes.Buffer{}, "LOUD")
		if logger.logLevel != "info" {
			t.Errorf("expected log level %q, got %q", "info", logger.logLevel)
		}
	})
}

// TestConsoleLoggerFormat verifies the plain text line format.
func TestConsoleLoggerFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "trace")

	logger.LogWarn("cannot access root /missing")

	output := buf.String()
	if !strings.HasPrefix(output, "[") {
		t.Errorf("expected timestamp prefix, got %q", output)
	}
	if !strings.Contains(output, "] [WARN] cannot access root /missing\n") {
		t.Errorf("unexpected format: %q", output)
	}
}

// TestConsoleLoggerColor verifies that forced color output still carries the message.
func TestConsoleLoggerColor(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLoggerWithColor(buf, "debug", true)

	logger.LogDebug("skipping excluded path")

	if !strings.Contains(buf.String(), "skipping excluded path") {
		t.Errorf("expected message in colored output, got %q", buf.String())
	}
}

// TestConsoleLoggerSummary verifies summary output and level filtering.
func TestConsoleLoggerSummary(t *testing.T) {
	t.Run("info level shows summary", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewConsoleLogger(buf, "info")

		logger.LogSummary(Summary{
			FilesScanned: 12,
			FilesMatched: 3,
			LinesMatched: 7,
			Skipped:      1,
			Duration:     250 * time.Millisecond,
		})

		output := buf.String()
		expected := "Search complete: files: 12, matched: 3, lines: 7, skipped: 1 (250ms)"
		if !strings.Contains(output, expected) {
			t.Errorf("expected %q in output, got %q", expected, output)
		}
	})

	t.Run("warn level hides summary", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewConsoleLogger(buf, "warn")

		logger.LogSummary(Summary{FilesScanned: 1})

		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	})
}

// TestConsoleLoggerConcurrency verifies lines from concurrent writers are never split.
func TestConsoleLoggerConcurrency(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			logger.LogInfo(fmt.Sprintf("message %d", n))
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 50 {
		t.Fatalf("expected 50 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if !strings.Contains(line, "[INFO] message ") {
			t.Errorf("malformed line %q", line)
		}
	}
}

// TestFormatDuration verifies human-readable durations.
func TestFormatDuration(t *testing.T) {
	tests := []struct {
		duration time.Duration
		expected string
	}{
		{0, "0ms"},
		{350 * time.Millisecond, "350ms"},
		{5 * time.Second, "5s"},
		{90 * time.Second, "1m30s"},
		{2 * time.Minute, "2m"},
		{time.Hour, "1h"},
		{2*time.Hour + 15*time.Minute, "2h15m"},
		{time.Hour + time.Minute + time.Second, "1h1m1s"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := formatDuration(tt.duration); got != tt.expected {
				t.Errorf("formatDuration(%v) = %q, want %q", tt.duration, got, tt.expected)
			}
		})
	}
}

// TestNoOpLogger verifies the no-op logger accepts every call.
func TestNoOpLogger(t *testing.T) {
	logger := NewNoOpLogger()
	logger.LogTrace("a")
	logger.LogDebug("b")
	logger.LogInfo("c")
	logger.LogWarn("d")
	logger.LogError("e")
	logger.LogSummary(Summary{})
}
