package expiration

import (
	"time"

	"github.com/vireo-labs/viewcache/types"
)

// ExpireAfterAccess implements a sliding TTL: every successful read pushes
// the deadline forward, so entries stay alive as long as they keep getting
// used and expire once nobody touches them for TTL.
type ExpireAfterAccess struct {
	TTL time.Duration
}

func (e *ExpireAfterAccess) IsExpired(ent *types.CacheEntry, now time.Time) bool {
	return ent.Expired(now)
}

func (e *ExpireAfterAccess) OnAccess(ent *types.CacheEntry, now time.Time) {
	if e.TTL > 0 {
		ent.ExpireAt = now.Add(e.TTL)
	}
}

func (e *ExpireAfterAccess) OnWrite(ent *types.CacheEntry, now time.Time) {
	// An explicit per-entry TTL wins over the sliding window.
	if ent.ExpireAt.IsZero() && e.TTL > 0 {
		ent.ExpireAt = now.Add(e.TTL)
	}
}
