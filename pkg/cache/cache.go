// Package cache provides a small in-memory TTL cache used to memoize
// aggregator query results. Upstream feeds change on the order of minutes,
// so identical parameter tuples within the TTL window are served from memory.
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTL is a concurrency-safe cache with per-entry expiry.
type TTL[V any] struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]entry[V]
	now   func() time.Time // injectable for tests
}

// NewTTL creates a cache with the given default TTL. A non-positive TTL
// disables caching: Get never hits.
func NewTTL[V any](ttl time.Duration) *TTL[V] {
	return &TTL[V]{
		ttl:   ttl,
		items: make(map[string]entry[V]),
		now:   time.Now,
	}
}

// Get returns the cached value and whether it is present and fresh.
func (c *TTL[V]) Get(key string) (V, bool) {
	var zero V
	if c.ttl <= 0 {
		return zero, false
	}

	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()

	if !ok || c.now().After(e.expiresAt) {
		return zero, false
	}
	return e.value, true
}

// Set stores the value under key with the default TTL.
func (c *TTL[V]) Set(key string, value V) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = entry[V]{value: value, expiresAt: c.now().Add(c.ttl)}

	// opportunistic cleanup, the key space is tiny (one entry per feed type)
	if len(c.items) > 64 {
		now := c.now()
		for k, e := range c.items {
			if now.After(e.expiresAt) {
				delete(c.items, k)
			}
		}
	}
}

// Purge drops all entries.
func (c *TTL[V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]entry[V])
}
