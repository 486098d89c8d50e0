package viewcache

import "sync/atomic"

// counters holds the store's cumulative counters. Updated with atomics so
// accounting never needs a second lock.
type counters struct {
	hits        atomic.Int64
	misses      atomic.Int64
	evictions   atomic.Int64
	expirations atomic.Int64
	savedBytes  atomic.Int64
}

func (c *counters) snapshot() (hits, misses, evictions, expirations, saved int64, hitRate float64) {
	hits = c.hits.Load()
	misses = c.misses.Load()
	evictions = c.evictions.Load()
	expirations = c.expirations.Load()
	saved = c.savedBytes.Load()
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}
	return
}
