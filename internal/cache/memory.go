package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache is the hot layer, holding recently fetched pages in memory
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a memory cache with the given default TTL.
// Expired entries are swept at the sweep interval.
func NewMemoryCache(ttl time.Duration, sweep time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(ttl, sweep),
	}
}

// Get retrieves a page body from memory
func (c *MemoryCache) Get(key string) ([]byte, bool) {
	val, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	body, ok := val.([]byte)
	if !ok {
		return nil, false
	}
	return body, true
}

// Set stores a page body with the given TTL (0 uses the default)
func (c *MemoryCache) Set(key string, value []byte, ttl time.Duration) error {
	c.cache.Set(key, value, ttl)
	return nil
}

// Delete removes a cached page from memory
func (c *MemoryCache) Delete(key string) error {
	c.cache.Delete(key)
	return nil
}

// Clear removes all cached pages from memory
func (c *MemoryCache) Clear() error {
	c.cache.Flush()
	return nil
}
