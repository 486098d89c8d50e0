// Package expiration defines how entries age out of the cache.
package expiration

import (
	"time"

	"github.com/vireo-labs/viewcache/types"
)

// Strategy decides when an entry's TTL elapses and how reads and writes move
// its deadline. Strategies only ever touch ExpireAt; the store owns the rest
// of the entry's bookkeeping.
type Strategy interface {

	// IsExpired reports whether the entry is past its deadline at now.
	IsExpired(ent *types.CacheEntry, now time.Time) bool

	// OnAccess is called after a successful read.
	OnAccess(ent *types.CacheEntry, now time.Time)

	// OnWrite is called when an entry is inserted or replaced. An ExpireAt
	// already set by an explicit per-entry TTL must be left alone.
	OnWrite(ent *types.CacheEntry, now time.Time)
}
