package expiration

import (
	"time"

	"github.com/vireo-labs/viewcache/types"
)

// ExpireAfterWrite gives every entry a fixed lifetime counted from insertion.
// Reads do not extend it. This is the default strategy: cached derived data
// goes stale by age, not by popularity.
type ExpireAfterWrite struct {
	TTL time.Duration
}

func (e *ExpireAfterWrite) IsExpired(ent *types.CacheEntry, now time.Time) bool {
	return ent.Expired(now)
}

// OnAccess does nothing: the deadline is fixed at write time.
func (e *ExpireAfterWrite) OnAccess(ent *types.CacheEntry, now time.Time) {}

func (e *ExpireAfterWrite) OnWrite(ent *types.CacheEntry, now time.Time) {
	if ent.ExpireAt.IsZero() && e.TTL > 0 {
		ent.ExpireAt = now.Add(e.TTL)
	}
}
