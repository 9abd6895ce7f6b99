package search

import "fmt"

// SkipReason explains why a path was left out of a search.
type SkipReason int

const (
	// SkipExcluded means the path is a member of the exclusion set.
	SkipExcluded SkipReason = iota
	// SkipUnresolvable means the path could not be stat'ed or resolved.
	SkipUnresolvable
	// SkipDirectoryRead means a directory could not be listed.
	SkipDirectoryRead
	// SkipFileRead means a file could not be read.
	SkipFileRead
	// SkipNotUTF8 means a file's content is not valid UTF-8 text.
	SkipNotUTF8
	// SkipNotRegular means the path is neither a directory nor a regular file.
	SkipNotRegular
	// SkipNotRecursive means a directory root was given while recursion is off.
	SkipNotRecursive
	// SkipVisited means a file or directory was already searched through
	// another path.
	SkipVisited

	numSkipReasons
)

// String returns the string representation of SkipReason.
func (r SkipReason) String() string {
	switch r {
	case SkipExcluded:
		return "excluded"
	case SkipUnresolvable:
		return "unresolvable"
	case SkipDirectoryRead:
		return "directory read failure"
	case SkipFileRead:
		return "file read failure"
	case SkipNotUTF8:
		return "not utf-8"
	case SkipNotRegular:
		return "not a regular file"
	case SkipNotRecursive:
		return "recursion disabled"
	case SkipVisited:
		return "already visited"
	default:
		return "unknown"
	}
}

// SkipError records a path that was skipped and why.
// It is recovered locally by the engine and never aborts a search.
type SkipError struct {
	Path   string
	Reason SkipReason
	Err    error
}

// Error implements the error interface for SkipError.
func (e *SkipError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("skipping %s (%s): %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("skipping %s (%s)", e.Path, e.Reason)
}

// Unwrap returns the underlying error.
func (e *SkipError) Unwrap() error {
	return e.Err
}
