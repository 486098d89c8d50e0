package types

import "context"

// Loader is the contract between the cache and a backing collaborator
// (database, API client, report generator).
//
// It is entirely optional: a cache constructed without a Loader is a plain
// key/value store and GetOrLoad degrades to Get.
type Loader interface {

	// Load fetches the value for a key that the cache does not hold. It is
	// called on misses from GetOrLoad; concurrent calls for the same key are
	// collapsed by the cache before reaching the Loader.
	Load(ctx context.Context, key string) (any, error)

	// Put writes a value back to the backing collaborator. Write policies
	// call this either synchronously (write-through) or from a background
	// worker (write-back). It never stores anything in the cache itself.
	Put(ctx context.Context, key string, value any) error
}
