// Command viewcache-demo walks through the cache's behaviors: hits, misses,
// TTL expiry, LRU eviction, transparent compression, read-through loading
// and the Prometheus endpoint.
package main

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/vireo-labs/viewcache"
	"github.com/vireo-labs/viewcache/eviction"
	"github.com/vireo-labs/viewcache/metrics"
	"github.com/vireo-labs/viewcache/writepolicy"
)

// reportStore stands in for the expensive collaborator the cache fronts.
type reportStore struct {
	mu   sync.RWMutex
	data map[string]any
}

func newReportStore() *reportStore {
	return &reportStore{data: make(map[string]any)}
}

func (s *reportStore) Load(ctx context.Context, key string) (any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fmt.Println("STORE  → load:", key)
	return s.data[key], nil
}

func (s *reportStore) Put(ctx context.Context, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func main() {
	ctx := context.Background()

	fmt.Println("==================== SYSTEM BOOT ====================")

	backing := newReportStore()
	_ = backing.Put(ctx, "report:q1", "quarterly aggregate, 1204 rows")

	prom := metrics.NewPrometheus("viewcache")
	promServer := metrics.NewServer(":9100")
	promServer.StartAsync()
	defer promServer.Stop()

	cfg := viewcache.DefaultConfig()
	cfg.MaxItems = 20
	cfg.MaxBytes = 1 << 20
	cfg.DefaultTTL = 5 * time.Second
	cfg.CompressionThreshold = 512
	cfg.SweepInterval = 2 * time.Second
	cfg.Eviction = eviction.LRU
	cfg.Loader = backing
	cfg.WritePolicy = writepolicy.NewWriteBack(backing, 1024)
	cfg.Metrics = prom

	cache, err := viewcache.New(cfg)
	if err != nil {
		panic(err)
	}

	fmt.Println("\n==================== 1) MISS THEN HIT ====================")
	v, _ := cache.GetOrLoad(ctx, "report:q1")
	fmt.Println("CACHE  → GET report:q1 =", v)
	v, _ = cache.GetOrLoad(ctx, "report:q1")
	fmt.Println("CACHE  → GET report:q1 =", v, "(served from cache)")

	fmt.Println("\n==================== 2) COMPRESSION ====================")
	big := strings.Repeat("derived view row; ", 400)
	_ = cache.Put(ctx, "view:large", big)
	got, _ := cache.Get("view:large")
	fmt.Println("CACHE  → large view round-trips:", got == big)

	fmt.Println("\n==================== 3) TTL EXPIRY ====================")
	_ = cache.PutWithTTL(ctx, "tmp", "short-lived", time.Second)
	time.Sleep(1500 * time.Millisecond)
	_, ok := cache.Get("tmp")
	fmt.Println("CACHE  → GET tmp after TTL: hit =", ok)

	fmt.Println("\n==================== 4) LRU EVICTION ====================")
	for i := 0; i < 40; i++ {
		_ = cache.Put(ctx, fmt.Sprintf("row:%d", i), i)
	}
	fmt.Println("CACHE  → entries after flood:", cache.Len())

	fmt.Println("\n==================== STATS ====================")
	st := cache.Stats()
	fmt.Printf("size=%dB items=%d hits=%d misses=%d hitRate=%.2f evictions=%d saved=%dB\n",
		st.SizeBytes, st.ItemCount, st.Hits, st.Misses, st.HitRate, st.Evictions, st.CompressionSavedBytes)
	fmt.Println("Prometheus metrics on http://localhost:9100/metrics")

	fmt.Println("\n==================== SHUTDOWN ====================")
	cache.Close()
	fmt.Println("SYSTEM → cache closed cleanly")
}
