package mem

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/domindex"
	"golang.org/x/sync/singleflight"
)

// Compile-time interface verification.
var _ domindex.ResultCache = (*Cache)(nil)

// entry is one cached result with its creation time.
type entry struct {
	result    *domindex.Result
	createdAt time.Time
}

// config holds shared cache configuration.
type config struct {
	ttl time.Duration
	now func() time.Time
}

// CacheOption configures a Cache or BoundedCache.
type CacheOption func(*config)

// WithTTL overrides the default entry lifetime (domindex.CacheTTL).
func WithTTL(d time.Duration) CacheOption {
	return func(c *config) {
		if d > 0 {
			c.ttl = d
		}
	}
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) CacheOption {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

func newConfig(opts []CacheOption) config {
	cfg := config{ttl: domindex.CacheTTL, now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Cache is an in-memory ResultCache with lazy TTL expiry. Expired entries
// stay in place until a rebuild for the same key overwrites them; there
// is no background sweep, so memory grows with the number of distinct
// keys ever requested. Use BoundedCache when that growth must be capped.
// It is safe for concurrent use by multiple goroutines.
type Cache struct {
	cfg   config
	group singleflight.Group

	mu      sync.Mutex
	entries map[string]entry
}

// NewCache creates a new Cache.
func NewCache(opts ...CacheOption) *Cache {
	return &Cache{
		cfg:     newConfig(opts),
		entries: make(map[string]entry),
	}
}

// GetOrBuild returns the fresh cached result for sourceKey, or invokes
// build on a miss and stores the outcome. Concurrent misses on the same
// key share a single build. A failed build stores nothing; the next call
// retries from scratch.
func (c *Cache) GetOrBuild(ctx context.Context, sourceKey string, build domindex.BuildFunc) (*domindex.Result, bool, error) {
	if result, ok := c.lookup(sourceKey); ok {
		return result, true, nil
	}

	v, err, _ := c.group.Do(sourceKey, func() (any, error) {
		// Another caller may have stored the entry between our miss and
		// this flight.
		if result, ok := c.lookup(sourceKey); ok {
			return result, nil
		}
		result, err := build(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[sourceKey] = entry{result: result, createdAt: c.cfg.now()}
		c.mu.Unlock()
		return result, nil
	})
	if err != nil {
		return nil, false, err
	}
	return v.(*domindex.Result), false, nil
}

// Len returns the number of stored entries, stale ones included.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// lookup returns the entry for key if it exists and is younger than the
// TTL. Stale entries are left in place.
func (c *Cache) lookup(key string) (*domindex.Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.cfg.now().Sub(e.createdAt) >= c.cfg.ttl {
		return nil, false
	}
	return e.result, true
}
