package viewcache

import (
	"log/slog"
	"time"
)

// sweepBatch bounds how many expired entries are removed per lock
// acquisition, so a large backlog never holds readers out for a full scan.
const sweepBatch = 256

// startSweeper launches the background pass that purges expired entries
// nobody reads anymore. Close stops it.
func (s *Store) startSweeper(interval time.Duration) {
	s.sweepStop = make(chan struct{})
	s.sweepWG.Add(1)
	go func() {
		defer s.sweepWG.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-s.sweepStop:
				return
			case <-ticker.C:
				s.Sweep()
			}
		}
	}()
}

// Sweep removes every entry whose TTL has elapsed, in batches that yield the
// store lock between rounds. The sweeper calls it on its interval; callers
// may also invoke it directly after bulk insertions.
func (s *Store) Sweep() int {
	removed := 0
	for {
		n := s.sweepOnce()
		removed += n
		if n < sweepBatch {
			break
		}
	}
	if removed > 0 {
		slog.Debug("sweep purged expired entries", "count", removed)
	}
	return removed
}

func (s *Store) sweepOnce() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0
	}

	now := s.now()
	n := 0
	for key, ent := range s.entries {
		if !s.engine.IsExpired(ent, now) {
			continue
		}
		s.removeLocked(key)
		s.stats.expirations.Add(1)
		s.engine.Metrics.Expire()
		n++
		if n >= sweepBatch {
			break
		}
	}
	return n
}
