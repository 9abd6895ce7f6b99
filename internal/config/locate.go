package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ConfigFileName is the name of the per-project defaults file
const ConfigFileName = ".grepr.yaml"

// ConfigEnvVar names the environment variable that points at a defaults file
const ConfigEnvVar = "GREPR_CONFIG"

// ConfigPath returns the defaults file to load for args.
// Priority order:
//  1. --config=<file> in args (last one wins, tokens after "--" are ignored)
//  2. GREPR_CONFIG environment variable (if set)
//  3. .grepr.yaml in the working directory or the nearest parent holding one
//
// explicit reports whether the path was named by the user (1 or 2), in which
// case it must exist. Returns "" when no file is found.
func ConfigPath(args []string) (path string, explicit bool) {
	for _, arg := range args {
		if arg == "--" {
			break
		}
		if value, ok := strings.CutPrefix(arg, "--config="); ok {
			path = value
		}
	}
	if path != "" {
		return path, true
	}

	if env := os.Getenv(ConfigEnvVar); env != "" {
		return env, true
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false
	}
	return findConfigFile(cwd), false
}

// findConfigFile walks up from dir looking for a .grepr.yaml file
func findConfigFile(dir string) string {
	current := dir
	for {
		candidate := filepath.Join(current, ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Reached filesystem root
			return ""
		}
		current = parent
	}
}
