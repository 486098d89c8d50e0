package viewcache

import (
	"fmt"
	"time"

	"github.com/vireo-labs/viewcache/compress"
	"github.com/vireo-labs/viewcache/eviction"
	"github.com/vireo-labs/viewcache/expiration"
	"github.com/vireo-labs/viewcache/refresh"
	"github.com/vireo-labs/viewcache/types"
	"github.com/vireo-labs/viewcache/writepolicy"
)

// Default budgets and intervals used by DefaultConfig.
const (
	DefaultMaxBytes             = 64 << 20 // 64 MiB
	DefaultMaxItems             = 10_000
	DefaultTTL                  = 5 * time.Minute
	DefaultCompressionThreshold = 10 << 10 // 10 KiB
	DefaultSweepInterval        = 2 * time.Minute
)

// Config carries everything a Store needs at construction. Budgets and
// intervals are fixed for the store's lifetime.
type Config struct {
	// MaxBytes is the total byte budget across all live entries.
	MaxBytes int64

	// MaxItems is the entry-count budget.
	MaxItems int

	// DefaultTTL applies to Put and to PutWithTTL calls passing ttl <= 0.
	// Zero means entries written without an explicit TTL never expire.
	DefaultTTL time.Duration

	// CompressionThreshold is the measured size above which byte and string
	// payloads are run through the codec.
	CompressionThreshold int64

	// SweepInterval is how often the background sweeper purges expired
	// entries. Zero disables the sweeper; expired entries are then removed
	// lazily on read only.
	SweepInterval time.Duration

	// Eviction selects the policy used when a budget is exceeded.
	Eviction eviction.PolicyType

	// Codec compresses large payloads. Nil means gzip.
	Codec compress.Codec

	// Expiration overrides the default fixed-TTL-from-write strategy.
	Expiration expiration.Strategy

	// Refresh, Loader and WritePolicy are the optional collaborator-facing
	// behaviors; all may be nil.
	Refresh     refresh.Hook
	Loader      types.Loader
	WritePolicy writepolicy.WritePolicy

	// Metrics observes cache events. Nil means no observation beyond the
	// Stats counters the store always keeps.
	Metrics types.Metrics

	// Now overrides the clock. Tests use this to exercise TTL behavior
	// without sleeping.
	Now func() time.Time
}

// DefaultConfig returns a Config with production-reasonable budgets, LRU
// eviction and the gzip codec.
func DefaultConfig() Config {
	return Config{
		MaxBytes:             DefaultMaxBytes,
		MaxItems:             DefaultMaxItems,
		DefaultTTL:           DefaultTTL,
		CompressionThreshold: DefaultCompressionThreshold,
		SweepInterval:        DefaultSweepInterval,
		Eviction:             eviction.LRU,
	}
}

func (c *Config) validate() error {
	if c.MaxBytes <= 0 {
		return fmt.Errorf("viewcache: MaxBytes must be positive, got %d", c.MaxBytes)
	}
	if c.MaxItems <= 0 {
		return fmt.Errorf("viewcache: MaxItems must be positive, got %d", c.MaxItems)
	}
	if c.CompressionThreshold < 0 {
		return fmt.Errorf("viewcache: CompressionThreshold must not be negative, got %d", c.CompressionThreshold)
	}
	if c.DefaultTTL < 0 || c.SweepInterval < 0 {
		return fmt.Errorf("viewcache: durations must not be negative")
	}
	switch c.Eviction {
	case eviction.LRU, eviction.LFU, eviction.FIFO:
	case "":
		c.Eviction = eviction.LRU
	default:
		return fmt.Errorf("viewcache: unknown eviction policy %q", c.Eviction)
	}
	return nil
}
