// Package eviction decides which key to remove when the cache exceeds one of
// its capacity budgets.
package eviction

/*
Policy is the interface every eviction strategy implements. The store calls
OnGet/OnPut/Remove to keep the policy's bookkeeping in sync with the entry
table, and calls Evict repeatedly until its budgets hold again.

Policies track keys only. They never see values or sizes; the store owns the
accounting and decides when eviction is needed.

Policies are not safe for concurrent use on their own. The store invokes them
under its lock.
*/
type Policy interface {

	// OnGet is called when a key is successfully read. Recency- and
	// frequency-based policies react to this; FIFO ignores it.
	OnGet(key string)

	// OnPut is called when a key is inserted. A key already tracked is left
	// where it is (the store reports replacements through OnGet).
	OnPut(key string)

	// Remove is called when a key leaves the cache for any reason other than
	// eviction, so the policy can drop its bookkeeping for it.
	Remove(key string)

	// Evict returns the next key to remove, or "" when nothing is tracked.
	// The returned key is already forgotten by the policy; the store must
	// remove it from its table.
	Evict() string
}

// PolicyType selects an eviction strategy by name.
type PolicyType string

const (
	// LRU evicts the key that has gone unread for the longest time.
	// Insertion order breaks ties between untouched keys.
	LRU PolicyType = "LRU"

	// LFU evicts a key with the lowest access count.
	LFU PolicyType = "LFU"

	// FIFO evicts the oldest inserted key regardless of access.
	FIFO PolicyType = "FIFO"
)

// NewPolicy builds a fresh policy of the given type. Panics on an unknown
// type; Config validation rejects those before this is reached.
func NewPolicy(t PolicyType) Policy {
	switch t {
	case LRU:
		return newLRU()
	case LFU:
		return newLFU()
	case FIFO:
		return newFIFO()
	default:
		panic("eviction: unknown policy type " + string(t))
	}
}
