package types

// Metrics is the observer interface for cache lifecycle events. The store
// calls these methods as things happen; implementations decide what to do
// with them (export to Prometheus, count in memory, ignore).
//
// Methods must be safe for concurrent use and must be fast: Hit and Miss sit
// on the read path.
type Metrics interface {

	// Hit is called when a read returns a live value.
	Hit()

	// Miss is called when a read finds no usable value, including reads of
	// expired or corrupted entries.
	Miss()

	// Eviction is called for each entry removed to satisfy a capacity budget.
	Eviction()

	// Expire is called for each entry removed because its TTL elapsed,
	// whether found by a read or by the background sweeper.
	Expire()

	// Refresh is called when a read triggers the refresh hook.
	Refresh()

	// CompressionSaved is called when a payload is stored compressed, with
	// the number of bytes saved (original size minus stored size).
	CompressionSaved(bytes int64)
}

// NoopMetrics ignores every event. It is installed by default so the rest of
// the code never has to nil-check the observer.
type NoopMetrics struct{}

func (NoopMetrics) Hit()                         {}
func (NoopMetrics) Miss()                        {}
func (NoopMetrics) Eviction()                    {}
func (NoopMetrics) Expire()                      {}
func (NoopMetrics) Refresh()                     {}
func (NoopMetrics) CompressionSaved(bytes int64) {}
