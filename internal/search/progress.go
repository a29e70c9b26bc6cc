package search

import (
	"sync"
	"sync/atomic"
)

// Stats summarizes walk activity
type Stats struct {
	Dirs       int64 // Directories expanded
	Entries    int64 // Entries evaluated
	Unreadable int64 // Directories that could not be read
	Matches    int64 // Matches recorded
}

// workerStats is written by one worker only and read by Progress.
// Padded to a cache line so workers do not share one.
type workerStats struct {
	dirs       atomic.Int64
	entries    atomic.Int64
	unreadable atomic.Int64
	matches    atomic.Int64
	_          [32]byte
}

func (s *workerStats) snapshot() Stats {
	return Stats{
		Dirs:       s.dirs.Load(),
		Entries:    s.entries.Load(),
		Unreadable: s.unreadable.Load(),
		Matches:    s.matches.Load(),
	}
}

// Progress exposes live counters of a running search. It is safe to call
// Snapshot while workers are running.
type Progress struct {
	mu      sync.Mutex
	workers []*workerStats
}

// NewProgress creates an empty progress tracker
func NewProgress() *Progress {
	return &Progress{}
}

// register returns counters for a new worker. A nil Progress hands out
// unregistered counters.
func (p *Progress) register() *workerStats {
	s := &workerStats{}
	if p == nil {
		return s
	}
	p.mu.Lock()
	p.workers = append(p.workers, s)
	p.mu.Unlock()
	return s
}

// Snapshot sums the counters of all workers
func (p *Progress) Snapshot() Stats {
	var total Stats
	if p == nil {
		return total
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, w := range p.workers {
		s := w.snapshot()
		total.Dirs += s.Dirs
		total.Entries += s.Entries
		total.Unreadable += s.Unreadable
		total.Matches += s.Matches
	}
	return total
}
