package eviction

// lfu buckets keys by access count and tracks the smallest populated count,
// so eviction never scans the whole key set.
type lfu struct {
	freq    map[string]int              // key -> access count
	buckets map[int]map[string]struct{} // access count -> keys
	minFreq int
}

func newLFU() *lfu {
	return &lfu{
		freq:    make(map[string]int),
		buckets: make(map[int]map[string]struct{}),
	}
}

func (l *lfu) OnGet(key string) {
	f, ok := l.freq[key]
	if !ok {
		return
	}

	delete(l.buckets[f], key)
	if len(l.buckets[f]) == 0 {
		delete(l.buckets, f)
		if l.minFreq == f {
			l.minFreq = f + 1
		}
	}

	l.freq[key] = f + 1
	l.bucket(f + 1)[key] = struct{}{}
}

func (l *lfu) OnPut(key string) {
	if _, ok := l.freq[key]; ok {
		return
	}
	l.freq[key] = 1
	l.bucket(1)[key] = struct{}{}
	l.minFreq = 1
}

func (l *lfu) Remove(key string) {
	f, ok := l.freq[key]
	if !ok {
		return
	}
	delete(l.buckets[f], key)
	if len(l.buckets[f]) == 0 {
		delete(l.buckets, f)
	}
	delete(l.freq, key)
}

// Evict removes some key from the lowest-count bucket. Keys sharing a count
// are evicted in arbitrary order.
func (l *lfu) Evict() string {
	for f := l.minFreq; ; f++ {
		bucket, ok := l.buckets[f]
		if !ok {
			if len(l.freq) == 0 {
				return ""
			}
			continue
		}
		for key := range bucket {
			delete(bucket, key)
			if len(bucket) == 0 {
				delete(l.buckets, f)
			}
			delete(l.freq, key)
			l.minFreq = f
			return key
		}
	}
}

func (l *lfu) bucket(f int) map[string]struct{} {
	b, ok := l.buckets[f]
	if !ok {
		b = make(map[string]struct{})
		l.buckets[f] = b
	}
	return b
}
