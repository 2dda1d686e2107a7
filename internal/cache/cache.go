// Package cache provides an in-memory TTL cache for scan results,
// preventing duplicate LLM calls for identical inputs.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// Defaults: one hour TTL, 500 entries.
const (
	DefaultTTL        = time.Hour
	DefaultMaxEntries = 500
)

// Stats reports cache effectiveness.
type Stats struct {
	Entries int     `json:"entries"`
	Hits    int     `json:"hits"`
	Misses  int     `json:"misses"`
	HitRate float64 `json:"hit_rate"`
}

type entry[T any] struct {
	storedAt time.Time
	value    T
}

// Cache is a thread-safe TTL cache keyed on
// SHA-256(text ∥ domain ∥ mode ∥ extra). The extra component carries the
// learning ring version so activations invalidate stale results.
type Cache[T any] struct {
	mu         sync.Mutex
	entries    map[string]entry[T]
	ttl        time.Duration
	maxEntries int
	hits       int
	misses     int
	now        func() time.Time
}

// New creates a cache. Non-positive ttl or maxEntries select the
// defaults.
func New[T any](ttl time.Duration, maxEntries int) *Cache[T] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Cache[T]{
		entries:    make(map[string]entry[T]),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func makeKey(text, domain, mode, extra string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s||%s||%s||%s", text, domain, mode, extra)))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached value if present and unexpired.
func (c *Cache[T]) Get(text, domain, mode, extra string) (T, bool) {
	var zero T
	key := makeKey(text, domain, mode, extra)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses++
		return zero, false
	}
	if c.now().Sub(e.storedAt) > c.ttl {
		delete(c.entries, key)
		c.misses++
		return zero, false
	}
	c.hits++
	return e.value, true
}

// Put stores a value, evicting the oldest entry at capacity.
func (c *Cache[T]) Put(text, domain, mode, extra string, value T) {
	key := makeKey(text, domain, mode, extra)

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxEntries {
		var oldestKey string
		var oldestAt time.Time
		first := true
		for k, e := range c.entries {
			if first || e.storedAt.Before(oldestAt) {
				oldestKey, oldestAt = k, e.storedAt
				first = false
			}
		}
		delete(c.entries, oldestKey)
	}
	c.entries[key] = entry[T]{storedAt: c.now(), value: value}
}

// Invalidate removes a specific entry.
func (c *Cache[T]) Invalidate(text, domain, mode, extra string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, makeKey(text, domain, mode, extra))
}

// Stats returns hit/miss statistics.
func (c *Cache[T]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := c.hits + c.misses
	s := Stats{Entries: len(c.entries), Hits: c.hits, Misses: c.misses}
	if total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}
