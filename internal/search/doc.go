// Package search implements the grepr search-and-traversal engine.
//
// The engine walks every root of a config.Config, skips any path in the
// exclusion set (checked at every level of the walk, not only at roots),
// scans regular files line by line for the literal query, and hands one
// MatchReport per matching file to a Sink.
//
// # Matching
//
// Matching is plain substring containment. In case-insensitive mode both
// the query and each line are folded with strings.ToLower, which maps one
// rune to one rune, so a column found in the folded line is also a valid
// rune offset into the original line. Columns are zero-based rune offsets
// of the first occurrence; rows are zero-based line numbers.
//
// Lines are split with universal newline semantics: "\n", "\r\n" and a
// lone "\r" all end a line, and a trailing terminator does not produce an
// extra empty line. Files that are not valid UTF-8 are skipped.
//
// # Concurrency
//
// Unless the config asks for a sequential walk, every directory entry is
// handled on its own goroutine. Each directory waits for all of its
// children before returning, and Run returns only when the whole tree is
// done. A weighted semaphore bounds how many files are read at once.
// Reports from different files arrive at the Sink in no particular order;
// Printer writes each report as one uninterrupted block.
//
// # Errors
//
// Per-entry failures (unreadable directories, unreadable or non-UTF-8
// files, vanished paths) are logged at debug level, counted in Stats and
// skipped. They never stop the walk. Only a Sink write failure is returned
// from Run, after the walk has finished.
package search
