package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// FileLogger appends diagnostics for each run to a log file.
// It is thread-safe and supports log level filtering.
// Output is never colorized.
type FileLogger struct {
	path     string
	file     *os.File
	logLevel string
	mu       sync.Mutex
}

// NewFileLogger opens (or creates) the log file at path for appending.
// The parent directory is created if it doesn't exist.
func NewFileLogger(path string, logLevel string) (*FileLogger, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := &FileLogger{
		path:     path,
		file:     file,
		logLevel: normalizeLogLevel(logLevel),
		mu:       sync.Mutex{},
	}

	logger.write(fmt.Sprintf("=== grepr run started at %s ===\n", time.Now().Format(time.RFC3339)))

	return logger, nil
}

// Path returns the log file location.
func (fl *FileLogger) Path() string {
	return fl.path
}

// shouldLog checks if a message at the given level should be logged.
// Returns true if messageLevel >= configured logLevel.
func (fl *FileLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(fl.logLevel)
}

// LogTrace logs a trace-level message (most verbose).
func (fl *FileLogger) LogTrace(message string) {
	fl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (fl *FileLogger) LogDebug(message string) {
	fl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (fl *FileLogger) LogInfo(message string) {
	fl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (fl *FileLogger) LogWarn(message string) {
	fl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (fl *FileLogger) LogError(message string) {
	fl.logWithLevel("ERROR", message)
}

// logWithLevel is a helper that logs a message at the specified level if filtering allows it.
func (fl *FileLogger) logWithLevel(level string, message string) {
	if !fl.shouldLog(strings.ToLower(level)) {
		return
	}

	fl.write(fmt.Sprintf("[%s] [%s] %s\n", timestamp(), level, message))
}

// LogSummary logs the search summary at INFO level.
func (fl *FileLogger) LogSummary(summary Summary) {
	if !fl.shouldLog("info") {
		return
	}

	fl.write(fmt.Sprintf("[%s] Search complete: %s (%s)\n",
		timestamp(), formatPlainSummary(summary), formatDuration(summary.Duration)))
}

// Close closes the log file.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.file == nil {
		return nil
	}

	err := fl.file.Close()
	fl.file = nil
	return err
}

// write appends a message to the log file.
func (fl *FileLogger) write(message string) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.file == nil {
		return
	}
	fl.file.WriteString(message)
}
