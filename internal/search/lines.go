package search

// SplitLines splits content into lines using universal newline semantics.
// "\n", "\r\n" and a lone "\r" each terminate a line. Terminators are not
// part of the returned lines, and a terminator at the very end of content
// does not produce a trailing empty line.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}

	var lines []string
	start := 0

	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\n':
			lines = append(lines, content[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, content[start:i])
			if i+1 < len(content) && content[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}

	if start < len(content) {
		lines = append(lines, content[start:])
	}

	return lines
}
