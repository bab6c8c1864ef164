package mem

import (
	"context"

	"github.com/fwojciec/domindex"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// Compile-time interface verification.
var (
	_ domindex.ResultCache  = (*BoundedCache)(nil)
	_ domindex.SessionStore = (*BoundedSessions)(nil)
)

// BoundedCache is a ResultCache with a hard entry cap on top of the same
// lazy TTL rule as Cache. The least recently used entry is evicted when
// the cap is reached.
type BoundedCache struct {
	cfg     config
	group   singleflight.Group
	entries *lru.Cache[string, entry]
}

// NewBoundedCache creates a BoundedCache holding at most size entries.
func NewBoundedCache(size int, opts ...CacheOption) (*BoundedCache, error) {
	entries, err := lru.New[string, entry](size)
	if err != nil {
		return nil, domindex.Errorf(domindex.EINVALID, "invalid cache size %d: %v", size, err)
	}
	return &BoundedCache{
		cfg:     newConfig(opts),
		entries: entries,
	}, nil
}

// GetOrBuild returns the fresh cached result for sourceKey, or invokes
// build on a miss and stores the outcome. Semantics match Cache except
// that storing may evict the least recently used entry.
func (c *BoundedCache) GetOrBuild(ctx context.Context, sourceKey string, build domindex.BuildFunc) (*domindex.Result, bool, error) {
	if result, ok := c.lookup(sourceKey); ok {
		return result, true, nil
	}

	v, err, _ := c.group.Do(sourceKey, func() (any, error) {
		if result, ok := c.lookup(sourceKey); ok {
			return result, nil
		}
		result, err := build(ctx)
		if err != nil {
			return nil, err
		}
		c.entries.Add(sourceKey, entry{result: result, createdAt: c.cfg.now()})
		return result, nil
	})
	if err != nil {
		return nil, false, err
	}
	return v.(*domindex.Result), false, nil
}

// Len returns the number of stored entries, stale ones included.
func (c *BoundedCache) Len() int {
	return c.entries.Len()
}

func (c *BoundedCache) lookup(key string) (*domindex.Result, bool) {
	e, ok := c.entries.Get(key)
	if !ok {
		return nil, false
	}
	if c.cfg.now().Sub(e.createdAt) >= c.cfg.ttl {
		return nil, false
	}
	return e.result, true
}

// BoundedSessions is a SessionStore that caps the number of live entries,
// evicting the least recently used id when full.
type BoundedSessions struct {
	results *lru.Cache[string, *domindex.Result]
}

// NewBoundedSessions creates a BoundedSessions store holding at most
// size entries.
func NewBoundedSessions(size int) (*BoundedSessions, error) {
	results, err := lru.New[string, *domindex.Result](size)
	if err != nil {
		return nil, domindex.Errorf(domindex.EINVALID, "invalid session store size %d: %v", size, err)
	}
	return &BoundedSessions{results: results}, nil
}

// Put stores result under a freshly minted id and returns the id,
// evicting the least recently used entry when the store is full.
func (s *BoundedSessions) Put(result *domindex.Result) string {
	id := newID()
	for s.results.Contains(id) {
		id = newID()
	}
	s.results.Add(id, result)
	return id
}

// Get returns the result for id. The bool result is false if the id is
// unknown or was evicted.
func (s *BoundedSessions) Get(id string) (*domindex.Result, bool) {
	return s.results.Get(id)
}

// Len returns the number of live sessions.
func (s *BoundedSessions) Len() int {
	return s.results.Len()
}
