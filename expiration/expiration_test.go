package expiration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vireo-labs/viewcache/types"
)

func TestExpireAfterWriteFixedDeadline(t *testing.T) {
	strat := &ExpireAfterWrite{TTL: time.Minute}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	ent := &types.CacheEntry{Key: "k", CreatedAt: now}
	strat.OnWrite(ent, now)
	assert.Equal(t, now.Add(time.Minute), ent.ExpireAt)
	assert.True(t, ent.ExpireAt.After(ent.CreatedAt))

	// Reads must not move the deadline.
	strat.OnAccess(ent, now.Add(30*time.Second))
	assert.Equal(t, now.Add(time.Minute), ent.ExpireAt)

	assert.False(t, strat.IsExpired(ent, now.Add(59*time.Second)))
	assert.True(t, strat.IsExpired(ent, now.Add(time.Minute)))
}

func TestExpireAfterWriteKeepsExplicitTTL(t *testing.T) {
	strat := &ExpireAfterWrite{TTL: time.Minute}
	now := time.Now()
	explicit := now.Add(5 * time.Second)

	ent := &types.CacheEntry{Key: "k", ExpireAt: explicit}
	strat.OnWrite(ent, now)
	assert.Equal(t, explicit, ent.ExpireAt, "explicit per-entry TTL wins")
}

func TestExpireAfterWriteZeroTTLNeverExpires(t *testing.T) {
	strat := &ExpireAfterWrite{}
	now := time.Now()

	ent := &types.CacheEntry{Key: "k"}
	strat.OnWrite(ent, now)
	assert.True(t, ent.ExpireAt.IsZero())
	assert.False(t, strat.IsExpired(ent, now.Add(1000*time.Hour)))
}

func TestExpireAfterAccessSlidesDeadline(t *testing.T) {
	strat := &ExpireAfterAccess{TTL: time.Minute}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	ent := &types.CacheEntry{Key: "k"}
	strat.OnWrite(ent, now)
	assert.Equal(t, now.Add(time.Minute), ent.ExpireAt)

	// A read halfway through pushes the window forward.
	mid := now.Add(30 * time.Second)
	strat.OnAccess(ent, mid)
	assert.Equal(t, mid.Add(time.Minute), ent.ExpireAt)

	assert.False(t, strat.IsExpired(ent, now.Add(80*time.Second)))
	assert.True(t, strat.IsExpired(ent, mid.Add(time.Minute)))
}
