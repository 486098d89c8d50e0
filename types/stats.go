package types

// Stats is a point-in-time snapshot of a cache. SizeBytes and ItemCount
// reflect current contents; the counters are cumulative since construction
// and deliberately survive Clear.
type Stats struct {
	SizeBytes int64
	ItemCount int

	Hits        int64
	Misses      int64
	Evictions   int64
	Expirations int64

	// HitRate is Hits / (Hits + Misses), 0 before any read.
	HitRate float64

	// CompressionSavedBytes is the cumulative difference between original
	// and stored sizes across all entries that were stored compressed.
	CompressionSavedBytes int64
}
