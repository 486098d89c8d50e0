package eviction

import "container/list"

// lru keeps keys on a doubly-linked list ordered by recency of use. The
// front is most recently used; Evict pops from the back. A new key enters at
// the front, so it is the last possible eviction candidate — the entry a Put
// just inserted is never sacrificed while anything older remains.
type lru struct {
	order *list.List               // of string keys, front = most recent
	elems map[string]*list.Element // key -> its list element, O(1) moves
}

func newLRU() *lru {
	return &lru{
		order: list.New(),
		elems: make(map[string]*list.Element),
	}
}

func (l *lru) OnGet(key string) {
	if el, ok := l.elems[key]; ok {
		l.order.MoveToFront(el)
	}
}

func (l *lru) OnPut(key string) {
	if _, ok := l.elems[key]; ok {
		return
	}
	l.elems[key] = l.order.PushFront(key)
}

func (l *lru) Remove(key string) {
	if el, ok := l.elems[key]; ok {
		l.order.Remove(el)
		delete(l.elems, key)
	}
}

func (l *lru) Evict() string {
	el := l.order.Back()
	if el == nil {
		return ""
	}
	key := el.Value.(string)
	l.order.Remove(el)
	delete(l.elems, key)
	return key
}
