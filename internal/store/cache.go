package store

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/BakeWatt_Go/internal/domain"
	"github.com/osse101/BakeWatt_Go/internal/metrics"
)

// cachedTemplateEntry wraps a template with version metadata for cache invalidation
type cachedTemplateEntry struct {
	Version  string                 `json:"version"`
	Template *domain.RecipeTemplate `json:"template"`
	Source   string                 `json:"source"`
	CachedAt time.Time              `json:"cached_at"`
}

// templateCache provides an in-memory LRU cache for template lookups
// with time-based expiration and version-based invalidation.
type templateCache struct {
	lru *expirable.LRU[string, *cachedTemplateEntry]
}

// newTemplateCache creates a new template cache with the specified size and TTL.
func newTemplateCache(size int, ttl time.Duration) *templateCache {
	return &templateCache{
		lru: expirable.NewLRU[string, *cachedTemplateEntry](size, nil, ttl),
	}
}

// Get retrieves a template by normalized key.
// Entries with a mismatched version are dropped and reported as a miss.
func (c *templateCache) Get(key string) (*domain.RecipeTemplate, bool) {
	entry, found := c.lru.Get(key)
	if !found {
		metrics.TemplateCacheEvents.WithLabelValues(metrics.CacheEventMiss).Inc()
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		metrics.TemplateCacheEvents.WithLabelValues(metrics.CacheEventMiss).Inc()
		return nil, false
	}

	metrics.TemplateCacheEvents.WithLabelValues(metrics.CacheEventHit).Inc()
	return entry.Template, true
}

// Set stores a template under its normalized key
func (c *templateCache) Set(key, source string, template *domain.RecipeTemplate) {
	c.lru.Add(key, &cachedTemplateEntry{
		Version:  CacheSchemaVersion,
		Template: template,
		Source:   source,
		CachedAt: time.Now(),
	})
}

// Invalidate removes a single template from the cache
func (c *templateCache) Invalidate(key string) {
	c.lru.Remove(key)
}

// Clear removes all entries from the cache
func (c *templateCache) Clear() {
	c.lru.Purge()
	metrics.TemplateCacheEvents.WithLabelValues(metrics.CacheEventPurge).Inc()
}

// Len reports the number of live entries
func (c *templateCache) Len() int {
	return c.lru.Len()
}
