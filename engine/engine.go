// Package engine is the policy layer of the cache. It owns the rules —
// expiration, refresh, loading, write propagation, metrics — while the store
// owns the data and the locking.
package engine

import (
	"context"
	"time"

	"github.com/vireo-labs/viewcache/expiration"
	"github.com/vireo-labs/viewcache/refresh"
	"github.com/vireo-labs/viewcache/types"
	"github.com/vireo-labs/viewcache/writepolicy"
)

// CacheEngine bundles the pluggable behaviors the store consults on every
// operation. Any field except Metrics may be nil, which disables that
// behavior.
type CacheEngine struct {
	Expiration  expiration.Strategy
	Refresh     refresh.Hook
	Loader      types.Loader
	WritePolicy writepolicy.WritePolicy
	Metrics     types.Metrics
}

// New builds an engine. A nil metrics observer is replaced with NoopMetrics
// so callers never nil-check it.
func New(
	exp expiration.Strategy,
	hook refresh.Hook,
	loader types.Loader,
	wp writepolicy.WritePolicy,
	metrics types.Metrics,
) *CacheEngine {
	if metrics == nil {
		metrics = types.NoopMetrics{}
	}
	return &CacheEngine{
		Expiration:  exp,
		Refresh:     hook,
		Loader:      loader,
		WritePolicy: wp,
		Metrics:     metrics,
	}
}

// IsExpired reports whether the entry should be treated as dead at now.
// Falls back to the entry's own deadline when no strategy is configured.
func (e *CacheEngine) IsExpired(ent *types.CacheEntry, now time.Time) bool {
	if e.Expiration != nil {
		return e.Expiration.IsExpired(ent, now)
	}
	return ent.Expired(now)
}

// OnRead runs the read-side rules after a hit: sliding-TTL strategies move
// the deadline, and the refresh hook gets a chance to revalidate the entry.
func (e *CacheEngine) OnRead(key string, ent *types.CacheEntry, now time.Time) {
	if e.Expiration != nil {
		e.Expiration.OnAccess(ent, now)
	}
	if e.Refresh != nil {
		e.Metrics.Refresh()
		e.Refresh.OnRead(key, ent)
	}
}

// OnWrite runs the write-side rules: the expiration strategy may stamp a
// deadline, and the write policy forwards the caller's original value to the
// backing store. value is the uncompressed payload, not ent.Value, which may
// hold codec output.
func (e *CacheEngine) OnWrite(ctx context.Context, ent *types.CacheEntry, value any, now time.Time) {
	if e.Expiration != nil {
		e.Expiration.OnWrite(ent, now)
	}
	if e.WritePolicy != nil {
		e.WritePolicy.OnWrite(ctx, ent.Key, value)
	}
}

// Load fetches a missing key from the backing collaborator.
func (e *CacheEngine) Load(ctx context.Context, key string) (any, error) {
	return e.Loader.Load(ctx, key)
}

// Close releases engine-owned resources, currently the write policy's
// background worker.
func (e *CacheEngine) Close() {
	if e.WritePolicy != nil {
		e.WritePolicy.Close()
	}
}
