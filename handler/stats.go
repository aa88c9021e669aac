package handler

import (
	"sync/atomic"

	"github.com/philipp01105/sharedlog/core"
)

// Stats tracks handler statistics
type Stats struct {
	// written counts successfully emitted entries per level
	written [core.OffLevel + 1]atomic.Uint64
	// failed counts entries the handler could not write
	failed atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementWritten atomically increments the written counter for a level
func (s *Stats) IncrementWritten(level core.Level) {
	if level < core.AllLevel || level > core.OffLevel {
		return
	}
	s.written[level].Add(1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	s.failed.Add(1)
}

// GetWritten returns the written count for a level
func (s *Stats) GetWritten(level core.Level) uint64 {
	if level < core.AllLevel || level > core.OffLevel {
		return 0
	}
	return s.written[level].Load()
}

// GetFailed returns the failed count
func (s *Stats) GetFailed() uint64 {
	return s.failed.Load()
}

// GetTotalWritten returns the total written across all levels
func (s *Stats) GetTotalWritten() uint64 {
	var total uint64
	for i := range s.written {
		total += s.written[i].Load()
	}
	return total
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.written {
		s.written[i].Store(0)
	}
	s.failed.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Written map[core.Level]uint64
	Failed  uint64
}

// GetSnapshot returns a snapshot of current statistics. Levels that
// never had an entry written are left out of Written.
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Written: make(map[core.Level]uint64),
		Failed:  s.GetFailed(),
	}
	for l := core.AllLevel; l <= core.OffLevel; l++ {
		if n := s.GetWritten(l); n > 0 {
			snap.Written[l] = n
		}
	}
	return snap
}
