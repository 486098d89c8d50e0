package viewcache_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/vireo-labs/viewcache"
	"github.com/vireo-labs/viewcache/eviction"
)

func newBenchCache(b *testing.B) *viewcache.Store {
	b.Helper()
	cfg := viewcache.DefaultConfig()
	cfg.MaxItems = 200_000
	cfg.MaxBytes = 256 << 20
	cfg.DefaultTTL = time.Minute
	cfg.SweepInterval = 0
	cfg.Eviction = eviction.LRU
	c, err := viewcache.New(cfg)
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(c.Close)
	return c
}

func BenchmarkGet(b *testing.B) {
	ctx := context.Background()
	c := newBenchCache(b)
	payload := strings.Repeat("x", 64)
	for i := 0; i < 100_000; i++ {
		_ = c.Put(ctx, fmt.Sprintf("k%d", i), payload)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(fmt.Sprintf("k%d", i%100_000))
	}
}

func BenchmarkPut(b *testing.B) {
	ctx := context.Background()
	c := newBenchCache(b)
	payload := strings.Repeat("x", 64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Put(ctx, fmt.Sprintf("k%d", i%200_000), payload)
	}
}

func BenchmarkMixedParallel(b *testing.B) {
	ctx := context.Background()
	c := newBenchCache(b)
	payload := strings.Repeat("x", 64)
	for i := 0; i < 100_000; i++ {
		_ = c.Put(ctx, fmt.Sprintf("k%d", i), payload)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			key := fmt.Sprintf("k%d", i%100_000)
			if i%10 == 0 {
				_ = c.Put(ctx, key, payload)
			} else {
				c.Get(key)
			}
			i++
		}
	})
}

func BenchmarkPutCompressed(b *testing.B) {
	ctx := context.Background()
	cfg := viewcache.DefaultConfig()
	cfg.MaxBytes = 256 << 20
	cfg.MaxItems = 200_000
	cfg.CompressionThreshold = 256
	cfg.SweepInterval = 0
	c, err := viewcache.New(cfg)
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(c.Close)

	payload := strings.Repeat("derived report row; ", 200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Put(ctx, fmt.Sprintf("k%d", i%10_000), payload)
	}
}
