package search

import (
	"os"
	"unicode/utf8"
)

// ScanFile reads the file at path and matches every line against m.
// It returns a nil report when no line matches. Read failures and
// non-UTF-8 content are reported as *SkipError.
func ScanFile(path string, m *Matcher) (*MatchReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &SkipError{Path: path, Reason: SkipFileRead, Err: err}
	}

	if !utf8.Valid(data) {
		return nil, &SkipError{Path: path, Reason: SkipNotUTF8}
	}

	lines := m.ScanContent(string(data))
	if len(lines) == 0 {
		return nil, nil
	}

	return &MatchReport{Path: path, Lines: lines}, nil
}
