package search

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/harrison/grepr/internal/config"
)

// Logger defines the logging interface used by the engine.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
}

// Engine searches the roots of a config.Config.
// The config is shared read-only by every goroutine of a run.
type Engine struct {
	cfg     *config.Config
	matcher *Matcher
	sink    Sink
	logger  Logger
	sem     *semaphore.Weighted

	visited *sync.Map
	stats   *Stats
}

// NewEngine creates an Engine for cfg that writes reports to sink.
// The logger parameter is optional and can be nil.
func NewEngine(cfg *config.Config, sink Sink, logger Logger) *Engine {
	if cfg == nil {
		panic("config cannot be nil")
	}
	if sink == nil {
		panic("sink cannot be nil")
	}
	if logger == nil {
		logger = nopLogger{}
	}

	e := &Engine{
		cfg:     cfg,
		matcher: NewMatcher(cfg.Query, cfg.IgnoreCase),
		sink:    sink,
		logger:  logger,
	}
	if cfg.Jobs > 0 && !cfg.Sequential {
		e.sem = semaphore.NewWeighted(int64(cfg.Jobs))
	}

	return e
}

// Run searches every root and returns once all files have been scanned.
// Per-entry failures are skipped and counted; the returned error is the
// first Sink failure, if any. Run may be called more than once; each call
// performs a fresh scan, but calls must not overlap.
func (e *Engine) Run(ctx context.Context) (*Stats, error) {
	e.stats = &Stats{}
	e.visited = &sync.Map{}
	start := time.Now()

	e.logger.LogDebug(fmt.Sprintf("Searching %d root(s) for %q (ignore case: %v, sequential: %v)",
		len(e.cfg.Roots), e.cfg.Query, e.cfg.IgnoreCase, e.cfg.Sequential))

	var err error
	if e.cfg.Sequential {
		for _, root := range e.cfg.Roots {
			err = errors.Join(err, e.searchRoot(ctx, root))
		}
	} else {
		var g errgroup.Group
		for _, root := range e.cfg.Roots {
			g.Go(func() error {
				return e.searchRoot(ctx, root)
			})
		}
		err = g.Wait()
	}

	e.stats.Duration = time.Since(start)
	return e.stats, err
}

// searchRoot handles one user-supplied root.
func (e *Engine) searchRoot(ctx context.Context, root string) error {
	if e.cfg.Exclude.Contains(root) {
		e.skip(&SkipError{Path: root, Reason: SkipExcluded})
		return nil
	}

	info, err := os.Stat(root)
	if err != nil {
		// A missing root is the user's mistake, so it is surfaced above debug
		e.stats.recordSkip(SkipUnresolvable)
		e.logger.LogWarn(fmt.Sprintf("cannot access %s: %v", root, unwrapPathError(err)))
		return nil
	}

	switch {
	case info.IsDir():
		if !e.cfg.Recursive {
			e.skip(&SkipError{Path: root, Reason: SkipNotRecursive})
			return nil
		}
		return e.walkDir(ctx, root)
	case info.Mode().IsRegular():
		return e.scanFile(ctx, root)
	default:
		e.skip(&SkipError{Path: root, Reason: SkipNotRegular})
		return nil
	}
}

// walkDir lists dir and handles every entry. In concurrent mode each entry
// runs on its own goroutine and walkDir returns only after all of them.
func (e *Engine) walkDir(ctx context.Context, dir string) error {
	if e.cfg.Exclude.Contains(dir) {
		e.skip(&SkipError{Path: dir, Reason: SkipExcluded})
		return nil
	}

	// Symlinked directories can form cycles; walk each real directory once
	if !e.firstVisit(dir) {
		e.skip(&SkipError{Path: dir, Reason: SkipVisited})
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		e.skip(&SkipError{Path: dir, Reason: SkipDirectoryRead, Err: unwrapPathError(err)})
		// os.ReadDir may still return the entries it read before failing
	}

	e.logger.LogTrace(fmt.Sprintf("Walking %s (%d entries)", dir, len(entries)))

	if e.cfg.Sequential {
		var errs error
		for _, entry := range entries {
			errs = errors.Join(errs, e.visit(ctx, filepath.Join(dir, entry.Name()), entry))
		}
		return errs
	}

	var g errgroup.Group
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		g.Go(func() error {
			return e.visit(ctx, path, entry)
		})
	}
	return g.Wait()
}

// visit handles one directory entry.
func (e *Engine) visit(ctx context.Context, path string, entry fs.DirEntry) error {
	if e.cfg.Exclude.Contains(path) {
		e.skip(&SkipError{Path: path, Reason: SkipExcluded})
		return nil
	}

	if entry.Type()&fs.ModeSymlink != 0 {
		if target, err := filepath.EvalSymlinks(path); err == nil && e.cfg.Exclude.Contains(target) {
			e.skip(&SkipError{Path: path, Reason: SkipExcluded})
			return nil
		}
	}

	// Stat follows symlinks so linked files and directories are searched too
	info, err := os.Stat(path)
	if err != nil {
		e.skip(&SkipError{Path: path, Reason: SkipUnresolvable, Err: unwrapPathError(err)})
		return nil
	}

	switch {
	case info.IsDir():
		return e.walkDir(ctx, path)
	case info.Mode().IsRegular():
		return e.scanFile(ctx, path)
	default:
		e.skip(&SkipError{Path: path, Reason: SkipNotRegular})
		return nil
	}
}

// scanFile scans one regular file and forwards its report to the sink.
func (e *Engine) scanFile(ctx context.Context, path string) error {
	if !e.firstVisit(path) {
		e.skip(&SkipError{Path: path, Reason: SkipVisited})
		return nil
	}

	if e.sem != nil {
		if err := e.sem.Acquire(ctx, 1); err != nil {
			e.skip(&SkipError{Path: path, Reason: SkipFileRead, Err: err})
			return nil
		}
		defer e.sem.Release(1)
	}

	report, err := ScanFile(path, e.matcher)
	if err != nil {
		var skipErr *SkipError
		if errors.As(err, &skipErr) {
			skipErr.Err = unwrapPathError(skipErr.Err)
			e.skip(skipErr)
		} else {
			e.skip(&SkipError{Path: path, Reason: SkipFileRead, Err: err})
		}
		return nil
	}

	e.stats.FilesScanned.Add(1)
	if report == nil {
		return nil
	}

	e.stats.FilesMatched.Add(1)
	e.stats.LinesMatched.Add(int64(len(report.Lines)))

	return e.sink.Print(report)
}

// firstVisit records the real location of path and reports whether this is
// the first time the run reaches it. Files and directories share the set, so
// each is searched at most once however many roots or links lead to it.
func (e *Engine) firstVisit(path string) bool {
	key := path
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		key = resolved
	}
	_, loaded := e.visited.LoadOrStore(key, struct{}{})
	return !loaded
}

// skip counts and logs a skipped path.
func (e *Engine) skip(err *SkipError) {
	e.stats.recordSkip(err.Reason)
	e.logger.LogDebug(err.Error())
}

// unwrapPathError drops the *fs.PathError wrapper, whose path is already
// part of the surrounding message.
func unwrapPathError(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}

type nopLogger struct{}

func (nopLogger) LogTrace(string) {}
func (nopLogger) LogDebug(string) {}
func (nopLogger) LogInfo(string)  {}
func (nopLogger) LogWarn(string)  {}
