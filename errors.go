package viewcache

import "errors"

// Errors surfaced by Store operations. Expiry, eviction and corruption are
// handled internally and never reach callers as errors; capacity rejection is
// the one condition the caller must decide about.
var (
	// ErrCapacityExceeded means a single value's measured size exceeds the
	// store's byte budget. The Put is rejected and the cache is unchanged.
	ErrCapacityExceeded = errors.New("viewcache: value larger than byte budget")

	// ErrClosed is returned by operations on a store after Close.
	ErrClosed = errors.New("viewcache: store is closed")
)
