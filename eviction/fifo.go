package eviction

import "container/list"

// fifo evicts keys strictly in insertion order. Reads never reorder anything.
type fifo struct {
	queue *list.List // of string keys, front = oldest insertion
	elems map[string]*list.Element
}

func newFIFO() *fifo {
	return &fifo{
		queue: list.New(),
		elems: make(map[string]*list.Element),
	}
}

func (f *fifo) OnGet(string) {}

func (f *fifo) OnPut(key string) {
	if _, ok := f.elems[key]; ok {
		return
	}
	f.elems[key] = f.queue.PushBack(key)
}

func (f *fifo) Remove(key string) {
	if el, ok := f.elems[key]; ok {
		f.queue.Remove(el)
		delete(f.elems, key)
	}
}

func (f *fifo) Evict() string {
	el := f.queue.Front()
	if el == nil {
		return ""
	}
	key := el.Value.(string)
	f.queue.Remove(el)
	delete(f.elems, key)
	return key
}
