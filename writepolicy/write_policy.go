// Package writepolicy controls how cache writes propagate to the backing
// collaborator. Without a policy, writes stay in memory only.
package writepolicy

import "context"

// WritePolicy is called for every value written into the cache. The two
// shipped implementations trade consistency against write latency:
// write-through forwards synchronously, write-back queues and forwards from
// a background worker.
type WritePolicy interface {

	// OnWrite is called with the caller's original (uncompressed) value
	// whenever the cache stores a key.
	OnWrite(ctx context.Context, key string, value any)

	// Close flushes any buffered writes and stops background workers. The
	// store calls this from its own Close.
	Close()
}
