package search

import (
	"strings"
	"unicode/utf8"
)

// Matcher tests lines for a literal query.
// A Matcher is immutable and safe for concurrent use.
type Matcher struct {
	needle     string
	ignoreCase bool
	runeLen    int
}

// NewMatcher creates a Matcher for query. When ignoreCase is true both the
// query and every tested line are lowercased before the containment test.
func NewMatcher(query string, ignoreCase bool) *Matcher {
	needle := query
	if ignoreCase {
		needle = strings.ToLower(query)
	}

	return &Matcher{
		needle:     needle,
		ignoreCase: ignoreCase,
		runeLen:    utf8.RuneCountInString(needle),
	}
}

// Find reports whether line contains the query and, if so, the zero-based
// rune offset of the first occurrence.
func (m *Matcher) Find(line string) (column int, ok bool) {
	haystack := line
	if m.ignoreCase {
		haystack = strings.ToLower(line)
	}

	idx := strings.Index(haystack, m.needle)
	if idx < 0 {
		return 0, false
	}

	return utf8.RuneCountInString(haystack[:idx]), true
}

// ScanContent returns every matching line of content, in source order.
func (m *Matcher) ScanContent(content string) []Line {
	var matches []Line

	for row, text := range SplitLines(content) {
		column, ok := m.Find(text)
		if !ok {
			continue
		}
		matches = append(matches, Line{
			Row:    row,
			Column: column,
			Length: m.runeLen,
			Text:   text,
		})
	}

	return matches
}

// Search returns the lines of content that contain query, case-sensitively.
func Search(query, content string) []string {
	return lineTexts(NewMatcher(query, false).ScanContent(content))
}

// SearchCaseInsensitive returns the lines of content whose lowercase form
// contains the lowercase form of query.
func SearchCaseInsensitive(query, content string) []string {
	return lineTexts(NewMatcher(query, true).ScanContent(content))
}

func lineTexts(lines []Line) []string {
	texts := make([]string, 0, len(lines))
	for _, l := range lines {
		texts = append(texts, l.Text)
	}
	return texts
}
