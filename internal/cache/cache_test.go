package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_HitAndMiss(t *testing.T) {
	c := New[int](time.Minute, 10)

	_, ok := c.Get("text", "general", "local", "0")
	assert.False(t, ok)

	c.Put("text", "general", "local", "0", 42)

	got, ok := c.Get("text", "general", "local", "0")
	assert.True(t, ok)
	assert.Equal(t, 42, got)
}

func TestCache_KeyComponents(t *testing.T) {
	c := New[int](time.Minute, 10)
	c.Put("text", "general", "local", "0", 1)

	// Every key component participates in the hash.
	_, ok := c.Get("text", "legal", "local", "0")
	assert.False(t, ok)
	_, ok = c.Get("text", "general", "full", "0")
	assert.False(t, ok)
	_, ok = c.Get("text", "general", "local", "1")
	assert.False(t, ok)
}

func TestCache_TTLExpiry(t *testing.T) {
	now := time.Now()
	c := New[string](time.Hour, 10)
	c.now = func() time.Time { return now }

	c.Put("text", "general", "local", "0", "cached")

	now = now.Add(59 * time.Minute)
	_, ok := c.Get("text", "general", "local", "0")
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get("text", "general", "local", "0")
	assert.False(t, ok)

	// Expired entries are removed on access.
	assert.Zero(t, c.Stats().Entries)
}

func TestCache_EvictsOldestAtCapacity(t *testing.T) {
	now := time.Now()
	c := New[int](time.Hour, 3)
	c.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		c.Put(fmt.Sprintf("text-%d", i), "general", "local", "0", i)
		now = now.Add(time.Second)
	}
	c.Put("text-3", "general", "local", "0", 3)

	_, ok := c.Get("text-0", "general", "local", "0")
	assert.False(t, ok, "oldest entry should be evicted")
	for i := 1; i <= 3; i++ {
		_, ok := c.Get(fmt.Sprintf("text-%d", i), "general", "local", "0")
		assert.True(t, ok, "text-%d", i)
	}
	assert.Equal(t, 3, c.Stats().Entries)
}

func TestCache_Invalidate(t *testing.T) {
	c := New[int](time.Minute, 10)
	c.Put("text", "general", "local", "0", 7)

	c.Invalidate("text", "general", "local", "0")

	_, ok := c.Get("text", "general", "local", "0")
	assert.False(t, ok)
}

func TestCache_Stats(t *testing.T) {
	c := New[int](time.Minute, 10)

	c.Get("a", "general", "local", "0")
	c.Put("a", "general", "local", "0", 1)
	c.Get("a", "general", "local", "0")
	c.Get("a", "general", "local", "0")

	s := c.Stats()
	assert.Equal(t, 1, s.Entries)
	assert.Equal(t, 2, s.Hits)
	assert.Equal(t, 1, s.Misses)
	assert.InDelta(t, 2.0/3.0, s.HitRate, 0.001)
}

func TestCache_DefaultsOnNonPositive(t *testing.T) {
	c := New[int](0, 0)
	assert.Equal(t, DefaultTTL, c.ttl)
	assert.Equal(t, DefaultMaxEntries, c.maxEntries)
}
