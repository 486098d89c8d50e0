// Package refresh lets the cache revalidate entries that are about to
// expire, without blocking the reads that notice them.
package refresh

import (
	"sync"
	"time"

	"github.com/vireo-labs/viewcache/types"
)

// Hook is called after every successful cache read. Implementations must be
// fast and non-blocking: this runs on the hot read path under the store lock.
type Hook interface {
	OnRead(key string, ent *types.CacheEntry)
}

// Threshold reloads entries whose remaining TTL has fallen below Remaining.
// The reload runs on its own goroutine; at most one reload per key is in
// flight at a time.
type Threshold struct {
	// Remaining is the TTL cutoff below which a read triggers a reload.
	Remaining time.Duration

	// Reload re-derives and re-inserts the value for a key. Typically this
	// calls GetOrLoad-style plumbing on the owning store.
	Reload func(key string)

	inflight sync.Map // key -> struct{}
}

func (t *Threshold) OnRead(key string, ent *types.CacheEntry) {
	if t.Reload == nil || ent.ExpireAt.IsZero() {
		return
	}
	if time.Until(ent.ExpireAt) >= t.Remaining {
		return
	}
	if _, loaded := t.inflight.LoadOrStore(key, struct{}{}); loaded {
		return
	}
	go func() {
		defer t.inflight.Delete(key)
		t.Reload(key)
	}()
}
