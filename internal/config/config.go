package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// ColorMode controls whether match reports and log lines are colorized
type ColorMode string

const (
	// ColorAuto colorizes only when the destination is a terminal
	ColorAuto ColorMode = "auto"
	// ColorAlways colorizes regardless of the destination
	ColorAlways ColorMode = "always"
	// ColorNever disables color output
	ColorNever ColorMode = "never"
)

// validLogLevels lists the accepted log_level values
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// FileConfig holds the defaults that can be provided by a .grepr.yaml file.
// Command-line tokens always override these values.
type FileConfig struct {
	// IgnoreCase enables case-insensitive matching
	IgnoreCase bool `yaml:"ignore_case"`

	// Recursive walks directory roots recursively
	Recursive bool `yaml:"recursive"`

	// Positions prefixes every matched line with "row:column"
	Positions bool `yaml:"positions"`

	// Exclude lists paths that are never scanned
	Exclude []string `yaml:"exclude"`

	// Jobs limits the number of files read concurrently (0 = unlimited)
	Jobs int `yaml:"jobs"`

	// Sequential walks the tree on a single goroutine
	Sequential bool `yaml:"sequential"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Color selects the color mode (auto, always, never)
	Color ColorMode `yaml:"color"`

	// Stats logs a run summary at info level
	Stats bool `yaml:"stats"`

	// LogFile, when set, also appends log lines to this file
	LogFile string `yaml:"log_file"`
}

// DefaultFileConfig returns a FileConfig with sensible default values
func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		IgnoreCase: false,
		Recursive:  true,
		Positions:  false,
		Exclude:    nil,
		Jobs:       4 * runtime.NumCPU(),
		Sequential: false,
		LogLevel:   "warn",
		Color:      ColorAuto,
		Stats:      false,
	}
}

// LoadFileConfig loads defaults from the specified YAML file.
// If the file doesn't exist, returns default configuration without error,
// unless required is set, in which case the error wraps ErrInvalidArguments.
// If the file exists but is malformed, returns an error.
// Relative exclude and log_file paths are resolved against the directory
// holding the file, not the working directory.
func LoadFileConfig(path string, required bool) (*FileConfig, error) {
	cfg := DefaultFileConfig()

	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if required {
			return nil, fmt.Errorf("%w: config file %s does not exist", ErrInvalidArguments, path)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Pointer fields tell an explicit false or zero apart from an absent key
	type yamlConfig struct {
		IgnoreCase *bool     `yaml:"ignore_case"`
		Recursive  *bool     `yaml:"recursive"`
		Positions  *bool     `yaml:"positions"`
		Exclude    []string  `yaml:"exclude"`
		Jobs       *int      `yaml:"jobs"`
		Sequential *bool     `yaml:"sequential"`
		LogLevel   string    `yaml:"log_level"`
		Color      ColorMode `yaml:"color"`
		Stats      *bool     `yaml:"stats"`
		LogFile    string    `yaml:"log_file"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.IgnoreCase != nil {
		cfg.IgnoreCase = *yamlCfg.IgnoreCase
	}
	if yamlCfg.Recursive != nil {
		cfg.Recursive = *yamlCfg.Recursive
	}
	if yamlCfg.Positions != nil {
		cfg.Positions = *yamlCfg.Positions
	}
	if len(yamlCfg.Exclude) > 0 {
		cfg.Exclude = append([]string(nil), yamlCfg.Exclude...)
	}
	if yamlCfg.Jobs != nil {
		cfg.Jobs = *yamlCfg.Jobs
	}
	if yamlCfg.Sequential != nil {
		cfg.Sequential = *yamlCfg.Sequential
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(yamlCfg.LogLevel)
	}
	if yamlCfg.Color != "" {
		cfg.Color = ColorMode(strings.ToLower(string(yamlCfg.Color)))
	}
	if yamlCfg.Stats != nil {
		cfg.Stats = *yamlCfg.Stats
	}
	if yamlCfg.LogFile != "" {
		cfg.LogFile = yamlCfg.LogFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config file path: %w", err)
	}
	dir := filepath.Dir(absPath)
	for i, p := range cfg.Exclude {
		cfg.Exclude[i] = relativeTo(dir, p)
	}
	if cfg.LogFile != "" {
		cfg.LogFile = relativeTo(dir, cfg.LogFile)
	}

	return cfg, nil
}

// relativeTo joins a relative path onto dir and leaves absolute paths alone
func relativeTo(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *FileConfig) Validate() error {
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must be >= 0, got %d", c.Jobs)
	}

	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if err := validateColor(c.Color); err != nil {
		return err
	}

	return nil
}

func validateColor(mode ColorMode) error {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", mode)
	}
}

// Config is the resolved configuration of one invocation.
// It is built once by Resolve and never mutated afterwards, so it can be
// shared read-only by every goroutine of a search.
type Config struct {
	// Query is the literal text to search for
	Query string

	// Roots are the canonical root paths, in the order given
	Roots []string

	// IgnoreCase enables case-insensitive matching
	IgnoreCase bool

	// Recursive walks directory roots
	Recursive bool

	// Positions selects "row:column text" records instead of raw lines
	Positions bool

	// Exclude holds every path that must never be scanned
	Exclude *PathSet

	// Jobs limits the number of files read concurrently (0 = unlimited)
	Jobs int

	// Sequential walks the tree on a single goroutine
	Sequential bool

	// LogLevel is the minimum level written to the log
	LogLevel string

	// Color is the color mode for reports and log lines
	Color ColorMode

	// OutputPath, when set, receives the whole report instead of stdout
	OutputPath string

	// Stats logs a run summary at info level
	Stats bool

	// LogFile, when set, also appends log lines to this file
	LogFile string

	// Unresolved lists roots and exclude paths that could not be canonicalized
	// and are kept in their absolute raw form
	Unresolved []string
}
