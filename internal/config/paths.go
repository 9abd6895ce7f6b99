package config

import (
	"fmt"
	"path/filepath"
)

// Canonicalize returns the absolute, symlink-free form of path.
// When symlinks cannot be evaluated (typically because the path does not
// exist) it returns the cleaned absolute path together with an error
// wrapping ErrPathUnresolvable, so callers can fall back to it.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path), fmt.Errorf("%w: %s: %v", ErrPathUnresolvable, path, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return abs, fmt.Errorf("%w: %s: %v", ErrPathUnresolvable, path, err)
	}

	return resolved, nil
}

// PathSet is an exact-match set of paths. Membership is tested on whole
// path strings, never on prefixes or globs.
// A PathSet is read-only once returned by NewPathSet.
type PathSet struct {
	paths map[string]struct{}
}

// NewPathSet builds a set from paths. Each path is stored in its cleaned
// absolute form and, when it differs, its canonical form. Paths that could
// not be canonicalized are returned as unresolved.
func NewPathSet(paths ...string) (*PathSet, []string) {
	set := &PathSet{paths: make(map[string]struct{}, len(paths)*2)}
	var unresolved []string

	for _, p := range paths {
		if p == "" {
			continue
		}

		canonical, err := Canonicalize(p)
		if err != nil {
			unresolved = append(unresolved, p)
		}
		set.paths[canonical] = struct{}{}

		if abs, err := filepath.Abs(p); err == nil {
			set.paths[abs] = struct{}{}
		}
	}

	return set, unresolved
}

// Contains reports whether path is a member of the set
func (s *PathSet) Contains(path string) bool {
	if s == nil || len(s.paths) == 0 {
		return false
	}
	_, ok := s.paths[filepath.Clean(path)]
	return ok
}

// Len returns the number of distinct path strings held by the set
func (s *PathSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.paths)
}
