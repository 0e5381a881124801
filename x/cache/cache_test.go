package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetPut(t *testing.T) {
	c := New[string, string](10, 30*time.Minute)

	_, ok := c.Get("r1")
	assert.False(t, ok)

	c.Put("r1", "OPEN")
	v, ok := c.Get("r1")
	assert.True(t, ok)
	assert.Equal(t, "OPEN", v)
}

func TestTTLExpiry(t *testing.T) {
	c := New[string, string](10, 30*time.Minute)

	clock := time.Now()
	c.now = func() time.Time { return clock }

	c.Put("r1", "OPEN")

	// within the window
	clock = clock.Add(29 * time.Minute)
	v, ok := c.Get("r1")
	assert.True(t, ok)
	assert.Equal(t, "OPEN", v)

	// the read above slid the window; 29 more minutes is still a hit
	clock = clock.Add(29 * time.Minute)
	_, ok = c.Get("r1")
	assert.True(t, ok)

	// no access for more than the TTL
	clock = clock.Add(31 * time.Minute)
	_, ok = c.Get("r1")
	assert.False(t, ok)

	// the stale entry was evicted, not just hidden
	assert.Equal(t, 0, c.Len())
}

func TestLRUEviction(t *testing.T) {
	c := New[string, string](1000, 30*time.Minute)

	for i := 0; i < 1001; i++ {
		c.Put(fmt.Sprintf("key%d", i), "SECURE")
	}

	assert.Equal(t, 1000, c.Len())

	// the first key in was the least recently used
	_, ok := c.Get("key0")
	assert.False(t, ok)

	_, ok = c.Get("key1000")
	assert.True(t, ok)
}

func TestRecencyOnRead(t *testing.T) {
	c := New[string, int](2, 30*time.Minute)

	c.Put("a", 1)
	c.Put("b", 2)

	// touch "a" so "b" becomes the eviction candidate
	_, ok := c.Get("a")
	assert.True(t, ok)

	c.Put("c", 3)

	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("b")
	assert.False(t, ok)
}
