package logger

import (
	"bytes"
	"strings"
	"testing"
)

// TestLogLevelFiltering verifies that messages are filtered based on log level
func TestLogLevelFiltering(t *testing.T) {
	tests := []struct {
		name         string
		logLevel     string
		messageLevel string
		shouldAppear bool
	}{
		// trace level - should see everything
		{name: "trace sees trace", logLevel: "trace", messageLevel: "trace", shouldAppear: true},
		{name: "trace sees error", logLevel: "trace", messageLevel: "error", shouldAppear: true},

		// debug level - should not see trace
		{name: "debug blocks trace", logLevel: "debug", messageLevel: "trace", shouldAppear: false},
		{name: "debug sees debug", logLevel: "debug", messageLevel: "debug", shouldAppear: true},

		// info level - should not see trace/debug
		{name: "info blocks debug", logLevel: "info", messageLevel: "debug", shouldAppear: false},
		{name: "info sees info", logLevel: "info", messageLevel: "info", shouldAppear: true},

		// warn level - the default for grepr
		{name: "warn blocks info", logLevel: "warn", messageLevel: "info", shouldAppear: false},
		{name: "warn sees warn", logLevel: "warn", messageLevel: "warn", shouldAppear: true},
		{name: "warn sees error", logLevel: "warn", messageLevel: "error", shouldAppear: true},

		// error level - only errors
		{name: "error blocks warn", logLevel: "error", messageLevel: "warn", shouldAppear: false},
		{name: "error sees error", logLevel: "error", messageLevel: "error", shouldAppear: true},

		// case-insensitive configuration
		{name: "uppercase level", logLevel: "DEBUG", messageLevel: "debug", shouldAppear: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewConsoleLogger(buf, tt.logLevel)
			message := tt.messageLevel + " msg"

			switch tt.messageLevel {
			case "trace":
				logger.LogTrace(message)
			case "debug":
				logger.LogDebug(message)
			case "info":
				logger.LogInfo(message)
			case "warn":
				logger.LogWarn(message)
			case "error":
				logger.LogError(message)
			}

			appeared := strings.Contains(buf.String(), message)
			if appeared != tt.shouldAppear {
				t.Errorf("logLevel=%s messageLevel=%s: appeared=%v, want %v (output %q)",
					tt.logLevel, tt.messageLevel, appeared, tt.shouldAppear, buf.String())
			}
		})
	}
}

// TestNormalizeLogLevel verifies level normalization
func TestNormalizeLogLevel(t *testing.T) {
	tests := map[string]string{
		"":        "info",
		"  warn ": "warn",
		"ERROR":   "error",
		"verbose": "info",
		"trace":   "trace",
	}

	for input, expected := range tests {
		if got := normalizeLogLevel(input); got != expected {
			t.Errorf("normalizeLogLevel(%q) = %q, want %q", input, got, expected)
		}
	}
}
