package search

import (
	"sync/atomic"
	"time"
)

// Stats counts what one search did. Counters are updated atomically by
// concurrent scans and are final once Run returns.
type Stats struct {
	FilesScanned atomic.Int64
	FilesMatched atomic.Int64
	LinesMatched atomic.Int64

	skipped  [numSkipReasons]atomic.Int64
	Duration time.Duration
}

func (s *Stats) recordSkip(reason SkipReason) {
	if reason >= 0 && reason < numSkipReasons {
		s.skipped[reason].Add(1)
	}
}

// Skipped returns how many entries were skipped for reason.
func (s *Stats) Skipped(reason SkipReason) int64 {
	if reason < 0 || reason >= numSkipReasons {
		return 0
	}
	return s.skipped[reason].Load()
}

// TotalSkipped returns how many entries were skipped for any reason.
func (s *Stats) TotalSkipped() int64 {
	var total int64
	for i := range s.skipped {
		total += s.skipped[i].Load()
	}
	return total
}
