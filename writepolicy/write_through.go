package writepolicy

import (
	"context"
	"log/slog"

	"github.com/vireo-labs/viewcache/types"
)

// WriteThrough forwards every cache write to the backing store before the
// write is considered complete. Slow stores make cache writes slow; in
// exchange the store never lags the cache.
type WriteThrough struct {
	store types.Loader
}

func NewWriteThrough(store types.Loader) *WriteThrough {
	return &WriteThrough{store: store}
}

func (w *WriteThrough) OnWrite(ctx context.Context, key string, value any) {
	if err := w.store.Put(ctx, key, value); err != nil {
		slog.Warn("write-through store put failed", "key", key, "err", err)
	}
}

// Close is a no-op: write-through has no background state.
func (w *WriteThrough) Close() {}
