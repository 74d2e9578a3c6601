package resolve

import (
	"context"
	"sync"
	"time"
)

type cacheEntry struct {
	service   string
	ok        bool
	expiresAt time.Time
}

// CachingResolver wraps any Resolver and caches results with a TTL. Negative
// results are cached too, so an unknown origin does not hit the Docker API
// on every event.
type CachingResolver struct {
	inner   Resolver
	ttl     time.Duration
	maxSize int

	mu    sync.RWMutex
	cache map[string]cacheEntry
}

// NewCachingResolver wraps r with a TTL cache. maxSize <= 0 means unbounded.
func NewCachingResolver(r Resolver, ttl time.Duration, maxSize int) *CachingResolver {
	return &CachingResolver{
		inner:   r,
		ttl:     ttl,
		maxSize: maxSize,
		cache:   make(map[string]cacheEntry),
	}
}

func (c *CachingResolver) Resolve(ctx context.Context, origin string) (string, bool) {
	c.mu.RLock()
	if e, ok := c.cache[origin]; ok && time.Now().Before(e.expiresAt) {
		c.mu.RUnlock()
		return e.service, e.ok
	}
	c.mu.RUnlock()

	service, ok := c.inner.Resolve(ctx, origin)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxSize > 0 && len(c.cache) >= c.maxSize {
		c.evictOldest()
	}
	c.cache[origin] = cacheEntry{
		service:   service,
		ok:        ok,
		expiresAt: time.Now().Add(c.ttl),
	}

	return service, ok
}

// Invalidate removes a single origin from the cache.
func (c *CachingResolver) Invalidate(origin string) {
	c.mu.Lock()
	delete(c.cache, origin)
	c.mu.Unlock()
}

func (c *CachingResolver) evictOldest() {
	var oldest string
	var oldestTime time.Time
	for origin, e := range c.cache {
		if oldest == "" || e.expiresAt.Before(oldestTime) {
			oldest = origin
			oldestTime = e.expiresAt
		}
	}
	if oldest != "" {
		delete(c.cache, oldest)
	}
}
