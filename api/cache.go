// Package api declares the public contract of the cache. Callers that only
// need the behavior can depend on this interface instead of the concrete
// store.
package api

import (
	"context"
	"time"

	"github.com/vireo-labs/viewcache/types"
)

// Cache is the narrow key/value surface the rest of an application talks to.
// Keys are opaque strings chosen by the caller; the cache performs no key
// derivation. Implementations must be safe for concurrent use.
type Cache interface {

	// Put stores a value under key with the default TTL. It fails only when
	// the value cannot be measured or exceeds the byte budget on its own.
	Put(ctx context.Context, key string, value any) error

	// PutWithTTL stores a value with an explicit time-to-live. ttl <= 0
	// falls back to the default.
	PutWithTTL(ctx context.Context, key string, value any, ttl time.Duration) error

	// Get returns the live value for key, or false. Expired entries never
	// count as hits.
	Get(key string) (any, bool)

	// GetOrLoad is Get with read-through: on a miss the configured Loader
	// fetches the value, which is cached and returned.
	GetOrLoad(ctx context.Context, key string) (any, error)

	// Remove deletes key, reporting whether anything was removed. Idempotent.
	Remove(key string) bool

	// Clear drops all entries. Cumulative counters keep their history.
	Clear()

	// Expire resets key's deadline to now + ttl; false when key is absent.
	Expire(key string, ttl time.Duration) bool

	// TTL returns the remaining lifetime of key: -2 when absent or expired,
	// -1 when the key has no deadline.
	TTL(key string) time.Duration

	// Len returns the number of live entries.
	Len() int

	// Stats returns a snapshot of contents and cumulative counters.
	Stats() types.Stats

	// Close stops background work. The cache is unusable afterwards.
	Close()
}
