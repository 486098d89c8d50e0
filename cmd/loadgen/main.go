// Command loadgen hammers a cache with concurrent mixed read/write traffic
// and reports throughput and hit rate.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/vireo-labs/viewcache"
	"github.com/vireo-labs/viewcache/eviction"
)

const (
	maxItems   = 200_000
	preload    = 100_000
	goroutines = 200
	opsPerG    = 5_000
	readRatio  = 0.9
)

func main() {
	ctx := context.Background()

	fmt.Println("================ CACHE LOAD GENERATOR =================")
	fmt.Println("Items budget :", maxItems)
	fmt.Println("Preload keys :", preload)
	fmt.Println("Goroutines   :", goroutines)
	fmt.Println("Ops each     :", opsPerG)

	cfg := viewcache.DefaultConfig()
	cfg.MaxItems = maxItems
	cfg.MaxBytes = 256 << 20
	cfg.DefaultTTL = time.Minute
	cfg.Eviction = eviction.LRU

	cache, err := viewcache.New(cfg)
	if err != nil {
		panic(err)
	}
	defer cache.Close()

	payload := strings.Repeat("x", 64)
	for i := 0; i < preload; i++ {
		_ = cache.Put(ctx, fmt.Sprintf("k%d", i), payload)
	}

	start := time.Now()
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for i := 0; i < opsPerG; i++ {
				key := fmt.Sprintf("k%d", rng.Intn(preload))
				if rng.Float64() < readRatio {
					cache.Get(key)
				} else {
					_ = cache.Put(ctx, key, payload)
				}
			}
		}(int64(g))
	}
	wg.Wait()
	elapsed := time.Since(start)

	total := goroutines * opsPerG
	st := cache.Stats()
	fmt.Println("---------------------------------")
	fmt.Printf("Ops        : %d in %v (%.0f ops/s)\n", total, elapsed, float64(total)/elapsed.Seconds())
	fmt.Printf("Hit rate   : %.3f\n", st.HitRate)
	fmt.Printf("Entries    : %d (%d bytes)\n", st.ItemCount, st.SizeBytes)
	fmt.Printf("Evictions  : %d\n", st.Evictions)
}
