// Package cache provides a small bounded cache for compiled formats.
package cache

import (
	"sync"
)

// Cache is a string-keyed bounded cache, safe for concurrent use. When
// full, the oldest entry is evicted. Values must be immutable: a cached
// value may be handed out to any number of callers concurrently.
type Cache[V any] struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]V
	order    []string
}

func New[V any](capacity int) *Cache[V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache[V]{
		capacity: capacity,
		entries:  make(map[string]V, capacity),
	}
}

// Get returns the cached value for key, building and caching it on a miss.
// build runs outside the lock, so concurrent misses on the same key may
// build twice; one of the results wins. Failed builds are not cached.
func (c *Cache[V]) Get(key string, build func() (V, error)) (V, error) {
	c.mu.Lock()
	v, found := c.entries[key]
	c.mu.Unlock()
	if found {
		return v, nil
	}

	v, e := build()
	if e != nil {
		return v, e
	}

	c.mu.Lock()
	if cached, found := c.entries[key]; found {
		v = cached
	} else {
		if len(c.order) >= c.capacity {
			delete(c.entries, c.order[0])
			c.order = c.order[1:]
		}
		c.entries[key] = v
		c.order = append(c.order, key)
	}
	c.mu.Unlock()
	return v, nil
}

// Len returns the number of cached entries.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
