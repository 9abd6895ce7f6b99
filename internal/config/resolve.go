package config

import (
	"fmt"
	"strconv"
	"strings"
)

// valueOptions are the recognized "--name=value" option names.
// A token carrying one of these names without "=value" is dropped.
var valueOptions = map[string]bool{
	"--exclude-dir": true,
	"--exclude":     true,
	"-not":          true,
	"--jobs":        true,
	"--log-level":   true,
	"--color":       true,
	"--output":      true,
	"--config":      true,
	"--log-file":    true,
}

// Resolve turns raw command-line tokens (without the program name) into a
// Config, starting from the defaults in base. Tokens are partitioned left to
// right into flags and positionals; the first positional is the query and
// the rest are roots.
//
// Recognized flags:
//   - -i, --ignore, --ignore-case: case-insensitive matching
//   - short clusters of i, r, R, n (-r, -R, -iR, -rn): ignore case, recursive, positions
//   - --recursive, --positions, --line-number, --sequential, --stats, --no-color
//   - --exclude-dir=<path>, --exclude=<path>, -not=<path>: exclude a path
//   - --jobs=<n>, --log-level=<lvl>, --color=<mode>, --output=<file>, --log-file=<file>, --config=<file>
//   - --: every later token is positional
//
// Any other token, including an unknown flag-shaped one, is positional.
// Errors wrap ErrInvalidArguments.
func Resolve(args []string, base *FileConfig) (*Config, error) {
	if base == nil {
		base = DefaultFileConfig()
	}

	cfg := &Config{
		IgnoreCase: base.IgnoreCase,
		Recursive:  base.Recursive,
		Positions:  base.Positions,
		Jobs:       base.Jobs,
		Sequential: base.Sequential,
		LogLevel:   base.LogLevel,
		Color:      base.Color,
		Stats:      base.Stats,
		LogFile:    base.LogFile,
	}
	excludes := append([]string(nil), base.Exclude...)

	var positional []string
	flagsDone := false

	for _, arg := range args {
		if flagsDone {
			positional = append(positional, arg)
			continue
		}

		switch arg {
		case "--":
			flagsDone = true
			continue
		case "-i", "--ignore", "--ignore-case":
			cfg.IgnoreCase = true
			continue
		case "--recursive":
			cfg.Recursive = true
			continue
		case "--positions", "--line-number":
			cfg.Positions = true
			continue
		case "--sequential":
			cfg.Sequential = true
			continue
		case "--stats":
			cfg.Stats = true
			continue
		case "--no-color":
			cfg.Color = ColorNever
			continue
		}

		if name, value, hasValue, known := splitOption(arg); known {
			if !hasValue {
				continue
			}
			if err := applyOption(cfg, &excludes, name, value); err != nil {
				return nil, err
			}
			continue
		}

		if isShortCluster(arg) {
			for _, r := range arg[1:] {
				switch r {
				case 'i':
					cfg.IgnoreCase = true
				case 'r', 'R':
					cfg.Recursive = true
				case 'n':
					cfg.Positions = true
				}
			}
			continue
		}

		positional = append(positional, arg)
	}

	if len(positional) < 2 {
		return nil, fmt.Errorf("%w: query and at least one path are required", ErrInvalidArguments)
	}

	cfg.Query = positional[0]
	if cfg.Query == "" {
		return nil, fmt.Errorf("%w: query must not be empty", ErrInvalidArguments)
	}

	for _, raw := range positional[1:] {
		canonical, err := Canonicalize(raw)
		if err != nil {
			cfg.Unresolved = append(cfg.Unresolved, raw)
		}
		cfg.Roots = append(cfg.Roots, canonical)
	}

	set, unresolved := NewPathSet(excludes...)
	cfg.Exclude = set
	cfg.Unresolved = append(cfg.Unresolved, unresolved...)

	return cfg, nil
}

// applyOption stores the value of a recognized "--name=value" option
func applyOption(cfg *Config, excludes *[]string, name, value string) error {
	switch name {
	case "--exclude-dir", "--exclude", "-not":
		if value != "" {
			*excludes = append(*excludes, value)
		}
	case "--jobs":
		jobs, err := strconv.Atoi(value)
		if err != nil || jobs < 0 {
			return fmt.Errorf("%w: --jobs must be a non-negative integer, got %q", ErrInvalidArguments, value)
		}
		cfg.Jobs = jobs
	case "--log-level":
		level := strings.ToLower(value)
		if !validLogLevels[level] {
			return fmt.Errorf("%w: invalid --log-level %q, must be one of: trace, debug, info, warn, error", ErrInvalidArguments, value)
		}
		cfg.LogLevel = level
	case "--color":
		mode := ColorMode(strings.ToLower(value))
		if err := validateColor(mode); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidArguments, err)
		}
		cfg.Color = mode
	case "--output":
		cfg.OutputPath = value
	case "--log-file":
		cfg.LogFile = value
	case "--config":
		// Consumed by ConfigPath before Resolve runs
	}
	return nil
}

// splitOption splits a "--name=value" token. known reports whether name is
// one of the recognized value options.
func splitOption(arg string) (name, value string, hasValue, known bool) {
	name, value, hasValue = strings.Cut(arg, "=")
	return name, value, hasValue, valueOptions[name]
}

// isShortCluster reports whether arg is a single-dash cluster made only of
// the short flag letters i, r, R and n
func isShortCluster(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' || arg[1] == '-' {
		return false
	}
	for _, r := range arg[1:] {
		switch r {
		case 'i', 'r', 'R', 'n':
		default:
			return false
		}
	}
	return true
}
