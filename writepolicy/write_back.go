package writepolicy

import (
	"context"
	"log/slog"
	"sync"

	"github.com/vireo-labs/viewcache/types"
)

type writeReq struct {
	key   string
	value any
}

// WriteBack queues cache writes and forwards them to the backing store from
// a single background worker. When the queue is full the write is dropped:
// blocking the cache's write path would defeat the point of the policy, so
// under pressure the backing store may miss updates.
type WriteBack struct {
	store types.Loader
	ch    chan writeReq
	wg    sync.WaitGroup
}

// NewWriteBack starts the worker. buffer bounds how many writes may be
// pending before new ones are dropped.
func NewWriteBack(store types.Loader, buffer int) *WriteBack {
	w := &WriteBack{
		store: store,
		ch:    make(chan writeReq, buffer),
	}
	w.wg.Add(1)
	go w.worker()
	return w
}

// OnWrite queues the write. The caller's context is not retained: the write
// outlives the request that produced it.
func (w *WriteBack) OnWrite(ctx context.Context, key string, value any) {
	select {
	case w.ch <- writeReq{key: key, value: value}:
	default:
		slog.Debug("write-back queue full, dropping write", "key", key)
	}
}

func (w *WriteBack) worker() {
	defer w.wg.Done()
	for req := range w.ch {
		if err := w.store.Put(context.Background(), req.key, req.value); err != nil {
			slog.Warn("write-back store put failed", "key", req.key, "err", err)
		}
	}
}

// Close stops accepting writes and drains the queue before returning.
func (w *WriteBack) Close() {
	close(w.ch)
	w.wg.Wait()
}
