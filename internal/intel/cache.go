package intel

import (
	"sync"
	"time"

	"ainews/internal/model"
)

const DefaultCacheTTL = 30 * time.Minute

type cacheKey struct {
	query     string
	timeFrame string
}

type cacheEntry struct {
	set      model.SearchResultSet
	cachedAt time.Time
}

// Cache memoizes result sets per (query, timeFrame) for a fixed TTL.
// Keys are exact-match: no case or whitespace normalization. Entries
// are evicted lazily when a read finds them expired.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		entries: make(map[cacheKey]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *Cache) Get(query, timeFrame string) (model.SearchResultSet, bool) {
	key := cacheKey{query: query, timeFrame: timeFrame}

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return model.SearchResultSet{}, false
	}

	if c.now().Sub(entry.cachedAt) >= c.ttl {
		c.evictStale(key)
		return model.SearchResultSet{}, false
	}

	return entry.set, true
}

func (c *Cache) Put(query, timeFrame string, set model.SearchResultSet) {
	key := cacheKey{query: query, timeFrame: timeFrame}

	c.mu.Lock()
	c.entries[key] = cacheEntry{set: set, cachedAt: c.now()}
	c.mu.Unlock()
}

// Len reports the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) evictStale(key cacheKey) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Re-check under the write lock: a concurrent Put may have
	// refreshed the entry since the read.
	entry, ok := c.entries[key]
	if ok && c.now().Sub(entry.cachedAt) >= c.ttl {
		delete(c.entries, key)
	}
}
