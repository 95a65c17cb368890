package store

import (
	"sync"
	"time"

	"github.com/yosefdabbas22/weather-app/internal/weather"
)

// MemoryCache is a concurrency-safe in-memory report cache with a short TTL
// and a bound on the number of entries.
type MemoryCache struct {
	mu sync.RWMutex

	// key: location key, value: cached report
	entries map[string]cacheEntry

	ttl        time.Duration // 0 = never expires
	maxEntries int           // <= 0 = unlimited
}

type cacheEntry struct {
	report   weather.Report
	storedAt time.Time
}

// NewMemoryCache creates a MemoryCache with the given retention limits.
func NewMemoryCache(ttl time.Duration, maxEntries int) *MemoryCache {
	return &MemoryCache{
		entries:    make(map[string]cacheEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
	}
}

// Get returns the cached report for key if it exists and has not expired.
func (c *MemoryCache) Get(key string) (weather.Report, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return weather.Report{}, false
	}
	if c.ttl > 0 && time.Since(entry.storedAt) > c.ttl {
		c.mu.Lock()
		// Re-check under the write lock; a fresher entry may have landed.
		if cur, still := c.entries[key]; still && cur.storedAt.Equal(entry.storedAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return weather.Report{}, false
	}
	return entry.report, true
}

// Put stores the report under key, evicting the stalest entry when the
// cache is full.
func (c *MemoryCache) Put(key string, r weather.Report) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		var oldestKey string
		var oldestAt time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.storedAt.Before(oldestAt) {
				oldestKey = k
				oldestAt = e.storedAt
			}
		}
		if oldestKey != "" {
			delete(c.entries, oldestKey)
		}
	}

	c.entries[key] = cacheEntry{report: r, storedAt: time.Now()}
}

// Len reports the number of live entries, expired or not.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
