package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestNewFileLogger verifies the log file and its parent directory are created
func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "grepr.log")

	fl, err := NewFileLogger(path, "debug")
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	defer fl.Close()

	if fl.Path() != path {
		t.Errorf("Path() = %q, want %q", fl.Path(), path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}

// TestFileLoggerWritesLevels verifies filtering and line format
func TestFileLoggerWritesLevels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grepr.log")

	fl, err := NewFileLogger(path, "info")
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	fl.LogDebug("hidden debug")
	fl.LogInfo("visible info")
	fl.LogError("visible error")
	fl.LogSummary(Summary{FilesScanned: 2, FilesMatched: 1, LinesMatched: 1, Duration: 2 * time.Second})

	if err := fl.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "=== grepr run started at") {
		t.Error("missing run header")
	}
	if strings.Contains(content, "hidden debug") {
		t.Error("debug message should be filtered at info level")
	}
	if !strings.Contains(content, "[INFO] visible info") {
		t.Error("missing info message")
	}
	if !strings.Contains(content, "[ERROR] visible error") {
		t.Error("missing error message")
	}
	if !strings.Contains(content, "Search complete: files: 2, matched: 1, lines: 1, skipped: 0 (2s)") {
		t.Errorf("missing summary, got %q", content)
	}
	if strings.Contains(content, "\x1b[") {
		t.Error("file output must not contain ANSI codes")
	}
}

// TestFileLoggerAppends verifies consecutive runs append to the same file
func TestFileLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grepr.log")

	for i := 0; i < 2; i++ {
		fl, err := NewFileLogger(path, "info")
		if err != nil {
			t.Fatalf("NewFileLogger() error = %v", err)
		}
		fl.LogInfo("run")
		fl.Close()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	if got := strings.Count(string(data), "=== grepr run started at"); got != 2 {
		t.Errorf("expected 2 run headers, got %d", got)
	}
}

// TestFileLoggerCloseTwice verifies Close is idempotent and later writes are dropped
func TestFileLoggerCloseTwice(t *testing.T) {
	fl, err := NewFileLogger(filepath.Join(t.TempDir(), "grepr.log"), "info")
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	if err := fl.Close(); err != nil {
		t.Fatalf("first Close() error = %v", err)
	}
	if err := fl.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	fl.LogError("after close")
}
