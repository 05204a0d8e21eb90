package cache

import (
	"container/list"
	"sync"
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// LRU is a bounded map safe for concurrent use. Once full, each insert of a
// new key drops the entry that was read or written longest ago.
type LRU[K comparable, V any] struct {
	mu      sync.Mutex
	size    int
	index   map[K]*list.Element
	recency *list.List // front is most recent
}

// NewLRU returns an LRU holding at most size entries. It panics when size is
// not positive.
func NewLRU[K comparable, V any](size int) *LRU[K, V] {
	if size <= 0 {
		panic("cache: LRU size must be positive")
	}
	return &LRU[K, V]{
		size:    size,
		index:   make(map[K]*list.Element, size),
		recency: list.New(),
	}
}

// Get returns the value stored under key and marks it most recent.
func (c *LRU[K, V]) Get(key K) (value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.index[key]
	if !ok {
		return value, false
	}
	c.recency.MoveToFront(el)
	return el.Value.(*entry[K, V]).value, true
}

// Put stores value under key, replacing any previous value.
func (c *LRU[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.index[key]; ok {
		el.Value.(*entry[K, V]).value = value
		c.recency.MoveToFront(el)
		return
	}
	c.index[key] = c.recency.PushFront(&entry[K, V]{key: key, value: value})
	if c.recency.Len() > c.size {
		oldest := c.recency.Back()
		c.recency.Remove(oldest)
		delete(c.index, oldest.Value.(*entry[K, V]).key)
	}
}

// Len returns the number of stored entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recency.Len()
}
