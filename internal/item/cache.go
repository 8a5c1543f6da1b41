package item

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/atheriel/itemforge/internal/domain"
	"github.com/atheriel/itemforge/internal/metrics"
)

// lookupCache memoizes resolved name lookups. An internal-name hit is a map
// access anyway; the cache pays off for display-name lookups, which scan the
// catalog. Entries expire so a half-forgotten alias cannot outlive many
// reloads unnoticed, and the whole cache is purged on reload.
type lookupCache struct {
	lru *expirable.LRU[string, *domain.EffectiveItem]
}

// newLookupCache creates a lookup cache with the given size and TTL.
func newLookupCache(size int, ttl time.Duration) *lookupCache {
	return &lookupCache{
		lru: expirable.NewLRU[string, *domain.EffectiveItem](size, nil, ttl),
	}
}

// Get retrieves a resolved lookup from the cache.
func (c *lookupCache) Get(key string) (*domain.EffectiveItem, bool) {
	it, found := c.lru.Get(key)
	if !found {
		metrics.CatalogLookupCacheMisses.Inc()
		return nil, false
	}
	metrics.CatalogLookupCacheHits.Inc()
	return it, true
}

// Set stores a resolved lookup in the cache.
func (c *lookupCache) Set(key string, it *domain.EffectiveItem) {
	c.lru.Add(key, it)
}

// Clear removes all entries from the cache.
func (c *lookupCache) Clear() {
	c.lru.Purge()
}
