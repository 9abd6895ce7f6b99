// Package filelock writes report files so that concurrent grepr runs aimed
// at the same --output path never interleave or leave a half-written file.
package filelock

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
)

// ErrLockTimeout is returned when another process holds the lock for longer
// than the caller is willing to wait.
var ErrLockTimeout = errors.New("timed out waiting for file lock")

// lockRetryDelay is how often a blocked LockContext retries
const lockRetryDelay = 50 * time.Millisecond

// FileLock is an advisory, inter-process lock on a side file.
type FileLock struct {
	flock *flock.Flock
	path  string
}

// NewFileLock creates a lock backed by the file at path.
// The file is created on first lock.
func NewFileLock(path string) *FileLock {
	return &FileLock{
		flock: flock.New(path),
		path:  path,
	}
}

// Path returns the lock file path.
func (fl *FileLock) Path() string {
	return fl.path
}

// LockContext acquires the lock, retrying until ctx is done.
func (fl *FileLock) LockContext(ctx context.Context) error {
	locked, err := fl.flock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return fmt.Errorf("%w: %s", ErrLockTimeout, fl.path)
		}
		return fmt.Errorf("failed to acquire lock on %s: %w", fl.path, err)
	}
	if !locked {
		return fmt.Errorf("%w: %s", ErrLockTimeout, fl.path)
	}
	return nil
}

// Unlock releases the lock.
func (fl *FileLock) Unlock() error {
	if err := fl.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", fl.path, err)
	}
	return nil
}

// AtomicWrite replaces the file at path with data through a temp file in the
// same directory followed by a rename. Readers see either the old content or
// the new content, never a partial write. Missing parent directories are
// created.
func AtomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}

	committed = true
	return nil
}

// LockAndWrite holds the lock "<path>.lock" while atomically writing data
// to path.
func LockAndWrite(ctx context.Context, path string, data []byte) error {
	lock := NewFileLock(path + ".lock")
	if err := lock.LockContext(ctx); err != nil {
		return err
	}
	defer lock.Unlock()

	return AtomicWrite(path, data)
}

// ReportFile collects a whole report in memory and publishes it to its
// destination in one locked, atomic write on Commit. It implements
// io.Writer and is safe for concurrent use.
type ReportFile struct {
	mu        sync.Mutex
	path      string
	buf       bytes.Buffer
	committed bool
}

// NewReportFile creates a ReportFile for path. Nothing touches the disk until
// Commit.
func NewReportFile(path string) *ReportFile {
	return &ReportFile{path: path}
}

// Path returns the destination path.
func (r *ReportFile) Path() string {
	return r.path
}

// Write appends p to the pending report.
func (r *ReportFile) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.committed {
		return 0, fmt.Errorf("report %s already committed", r.path)
	}
	return r.buf.Write(p)
}

// Len returns the number of pending bytes.
func (r *ReportFile) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.Len()
}

// Commit writes the pending report to the destination. An empty report
// still replaces the file, so stale results from an earlier run never
// survive. Commit may only be called once.
func (r *ReportFile) Commit(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.committed {
		return fmt.Errorf("report %s already committed", r.path)
	}
	r.committed = true

	return LockAndWrite(ctx, r.path, r.buf.Bytes())
}
