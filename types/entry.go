package types

import "time"

// PayloadKind records how a compressed payload must be restored before it is
// handed back to the caller.
type PayloadKind uint8

const (
	// KindRaw means Value is stored exactly as the caller supplied it.
	KindRaw PayloadKind = iota

	// KindBytes means Value holds codec output that decompresses to a []byte.
	KindBytes

	// KindString means Value holds codec output that decompresses to a string.
	KindString
)

// CacheEntry is the stored record for one key. It is intentionally mutable:
// the owning store updates access stats and expiry in place under its lock.
type CacheEntry struct {
	Key   string
	Value any

	// SizeBytes is what the entry contributes to the byte budget: the stored
	// payload size, after compression when compression was applied.
	SizeBytes int64

	// OriginalBytes is the payload size measured at insertion, before any
	// compression. SizeBytes == OriginalBytes for uncompressed entries.
	OriginalBytes int64

	CreatedAt      time.Time
	ExpireAt       time.Time // zero => no TTL
	LastAccessedAt time.Time
	AccessCount    int64

	// Compressed marks entries whose Value must pass through the codec
	// before being returned. Kind says what the decompressed bytes are.
	Compressed bool
	Kind       PayloadKind
}

// Expired reports whether the entry's TTL has elapsed at the given instant.
// Entries without a TTL never expire.
func (e *CacheEntry) Expired(now time.Time) bool {
	return !e.ExpireAt.IsZero() && !now.Before(e.ExpireAt)
}
