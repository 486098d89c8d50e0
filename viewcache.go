// Package viewcache is an in-process cache for expensive derived data:
// aggregated views, formatted reports, transformed records. It enforces byte
// and item budgets with pluggable eviction, expires entries by TTL both
// lazily on read and via a background sweeper, and transparently compresses
// large payloads.
//
// A Store is explicitly constructed and explicitly owned; call Close on
// shutdown to stop its background work.
package viewcache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/vireo-labs/viewcache/compress"
	"github.com/vireo-labs/viewcache/engine"
	"github.com/vireo-labs/viewcache/eviction"
	"github.com/vireo-labs/viewcache/expiration"
	"github.com/vireo-labs/viewcache/sizeof"
	"github.com/vireo-labs/viewcache/types"
)

/*
Store is the orchestrating façade. It owns the entry table and the running
size/item totals, and delegates policy decisions to its engine, eviction
policy and codec.

One mutex guards the table, the totals and the eviction policy. Every
mutating operation and the check-expiry-then-touch sequence inside Get run
under it, so the budgets in Stats are exact at any observation point. The
cumulative counters use atomics and need no lock.
*/
type Store struct {
	cfg    Config
	engine *engine.CacheEngine
	codec  compress.Codec
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]*types.CacheEntry
	policy  eviction.Policy
	total   int64 // Σ SizeBytes of live entries
	closed  bool

	stats counters
	sf    singleflight.Group

	sweepStop chan struct{}
	sweepWG   sync.WaitGroup
}

// New builds a Store from cfg and starts its sweeper if a sweep interval is
// configured. The returned store must be Closed when no longer needed.
func New(cfg Config) (*Store, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Codec == nil {
		cfg.Codec = compress.NewGzip()
	}
	if cfg.Expiration == nil {
		cfg.Expiration = &expiration.ExpireAfterWrite{TTL: cfg.DefaultTTL}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	s := &Store{
		cfg:     cfg,
		engine:  engine.New(cfg.Expiration, cfg.Refresh, cfg.Loader, cfg.WritePolicy, cfg.Metrics),
		codec:   cfg.Codec,
		now:     cfg.Now,
		entries: make(map[string]*types.CacheEntry),
		policy:  eviction.NewPolicy(cfg.Eviction),
	}
	if cfg.SweepInterval > 0 {
		s.startSweeper(cfg.SweepInterval)
	}
	return s, nil
}

// Put stores value under key with the configured default TTL.
func (s *Store) Put(ctx context.Context, key string, value any) error {
	return s.PutWithTTL(ctx, key, value, 0)
}

// PutWithTTL stores value under key. ttl <= 0 falls back to the default TTL.
// A value measured larger than the byte budget is rejected with
// ErrCapacityExceeded and the cache is left untouched. Replacing a key
// subtracts the old entry's size before the new one is accounted, then
// eviction runs until both budgets hold.
func (s *Store) PutWithTTL(ctx context.Context, key string, value any, ttl time.Duration) error {
	orig, err := sizeof.Bytes(value)
	if err != nil {
		return err
	}
	if orig > s.cfg.MaxBytes {
		return fmt.Errorf("%w: %d bytes, budget %d", ErrCapacityExceeded, orig, s.cfg.MaxBytes)
	}

	stored, storedSize, kind, compressed := s.pack(value, orig)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	now := s.now()
	if old, ok := s.entries[key]; ok {
		s.total -= old.SizeBytes
		s.policy.OnGet(key) // a replacement is the most recently used entry
	} else {
		s.policy.OnPut(key)
	}

	ent := &types.CacheEntry{
		Key:            key,
		Value:          stored,
		SizeBytes:      storedSize,
		OriginalBytes:  orig,
		CreatedAt:      now,
		LastAccessedAt: now,
		Compressed:     compressed,
		Kind:           kind,
	}
	if ttl > 0 {
		ent.ExpireAt = now.Add(ttl)
	}
	s.engine.OnWrite(ctx, ent, value, now)

	s.entries[key] = ent
	s.total += storedSize

	if compressed {
		saved := orig - storedSize
		s.stats.savedBytes.Add(saved)
		s.engine.Metrics.CompressionSaved(saved)
	}

	s.evictUntilFits()
	return nil
}

// Get returns the live value for key. Expired entries are removed on the
// spot and reported as misses; compressed payloads are restored before being
// returned. The second result is false on any miss.
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(key)
}

func (s *Store) getLocked(key string) (any, bool) {
	ent, ok := s.entries[key]
	if !ok || s.closed {
		return nil, s.miss()
	}

	now := s.now()
	if s.engine.IsExpired(ent, now) {
		s.removeLocked(key)
		s.stats.expirations.Add(1)
		s.engine.Metrics.Expire()
		return nil, s.miss()
	}

	ent.AccessCount++
	ent.LastAccessedAt = now
	s.engine.OnRead(key, ent, now)
	s.policy.OnGet(key)

	value, err := s.unpack(ent)
	if err != nil {
		// Corrupted payload: purge and behave as a miss. The caller never
		// sees the error.
		slog.Warn("purging corrupted cache entry", "key", key, "err", err)
		s.removeLocked(key)
		return nil, s.miss()
	}

	s.stats.hits.Add(1)
	s.engine.Metrics.Hit()
	return value, true
}

// miss records a miss and returns false, so miss paths read as one line.
func (s *Store) miss() bool {
	s.stats.misses.Add(1)
	s.engine.Metrics.Miss()
	return false
}

// GetOrLoad returns the cached value for key, or fetches it from the
// configured Loader on a miss, caches it and returns it. Concurrent loads of
// the same key are collapsed into one Loader call. Without a Loader it
// behaves like Get with a nil result on miss.
func (s *Store) GetOrLoad(ctx context.Context, key string) (any, error) {
	if v, ok := s.Get(key); ok {
		return v, nil
	}
	if s.engine.Loader == nil {
		return nil, nil
	}

	v, err, _ := s.sf.Do(key, func() (any, error) {
		return s.engine.Load(ctx, key)
	})
	if err != nil || v == nil {
		return nil, err
	}

	// Best effort: an oversized value is still returned, just not cached.
	_ = s.Put(ctx, key, v)
	return v, nil
}

// Remove deletes key and reports whether an entry was actually removed.
// Removing an absent key is a no-op, not an error.
func (s *Store) Remove(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[key]; !ok {
		return false
	}
	s.removeLocked(key)
	return true
}

// Clear removes all entries and resets the running totals. The cumulative
// hit/miss/eviction counters keep their history.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*types.CacheEntry)
	s.total = 0
	s.policy = eviction.NewPolicy(s.cfg.Eviction)
}

// Expire sets key's deadline to now + ttl. Returns false when the key does
// not exist.
func (s *Store) Expire(key string, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ent, ok := s.entries[key]
	if !ok {
		return false
	}
	ent.ExpireAt = s.now().Add(ttl)
	return true
}

// TTL returns the remaining time-to-live for key, with Redis semantics:
// -2 when the key is absent or already expired, -1 when it has no deadline.
func (s *Store) TTL(key string) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	ent, ok := s.entries[key]
	if !ok {
		return -2
	}
	if ent.ExpireAt.IsZero() {
		return -1
	}
	d := ent.ExpireAt.Sub(s.now())
	if d <= 0 {
		return -2
	}
	return d
}

// Len returns the number of live entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Stats returns a snapshot of current contents and cumulative counters.
func (s *Store) Stats() types.Stats {
	s.mu.Lock()
	size, count := s.total, len(s.entries)
	s.mu.Unlock()

	hits, misses, evictions, expirations, saved, hitRate := s.stats.snapshot()
	return types.Stats{
		SizeBytes:             size,
		ItemCount:             count,
		Hits:                  hits,
		Misses:                misses,
		Evictions:             evictions,
		Expirations:           expirations,
		HitRate:               hitRate,
		CompressionSavedBytes: saved,
	}
}

// Close stops the sweeper and the write policy's background worker. The
// store rejects writes and misses all reads afterwards. Close is idempotent.
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	if s.sweepStop != nil {
		close(s.sweepStop)
		s.sweepWG.Wait()
	}
	s.engine.Close()
}

// pack decides the stored form of a payload. Only byte and string payloads
// above the threshold are compressed; anything else is stored as-is so Get
// returns exactly what Put received. Codec output that fails to shrink the
// payload is discarded.
func (s *Store) pack(value any, orig int64) (stored any, size int64, kind types.PayloadKind, compressed bool) {
	if orig <= s.cfg.CompressionThreshold {
		return value, orig, types.KindRaw, false
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw, kind = v, types.KindBytes
	case string:
		raw, kind = []byte(v), types.KindString
	default:
		return value, orig, types.KindRaw, false
	}

	blob, err := s.codec.Compress(raw)
	if err != nil || int64(len(blob)) >= orig {
		if err != nil {
			slog.Warn("compression failed, storing raw", "codec", s.codec.Name(), "err", err)
		}
		return value, orig, types.KindRaw, false
	}
	return blob, int64(len(blob)), kind, true
}

// unpack restores a stored payload to the caller's original value.
func (s *Store) unpack(ent *types.CacheEntry) (any, error) {
	if !ent.Compressed {
		return ent.Value, nil
	}
	raw, err := s.codec.Decompress(ent.Value.([]byte))
	if err != nil {
		return nil, err
	}
	if ent.Kind == types.KindString {
		return string(raw), nil
	}
	return raw, nil
}

// evictUntilFits removes entries in policy order until both budgets hold.
// Callers hold s.mu. The entry a Put just inserted sits at the freshest end
// of every policy, so it is only ever the final candidate, and the
// pre-insert capacity check guarantees that case fits on its own.
func (s *Store) evictUntilFits() {
	for s.total > s.cfg.MaxBytes || len(s.entries) > s.cfg.MaxItems {
		victim := s.policy.Evict()
		if victim == "" {
			return
		}
		ent, ok := s.entries[victim]
		if !ok {
			continue
		}
		delete(s.entries, victim)
		s.total -= ent.SizeBytes
		s.stats.evictions.Add(1)
		s.engine.Metrics.Eviction()
	}
}

// removeLocked deletes one entry and its policy bookkeeping. Callers hold
// s.mu and have verified the key exists (removal of an absent key is a
// no-op anyway).
func (s *Store) removeLocked(key string) {
	ent, ok := s.entries[key]
	if !ok {
		return
	}
	delete(s.entries, key)
	s.total -= ent.SizeBytes
	s.policy.Remove(key)
}
