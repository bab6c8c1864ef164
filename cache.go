package domindex

import (
	"context"
	"time"
)

// CacheTTL is the default lifetime of a cache entry.
const CacheTTL = 7200 * time.Second

// BuildFunc produces a Result for a source on cache miss. The fetch,
// parse, and index work happens inside the function, outside the cache.
type BuildFunc func(ctx context.Context) (*Result, error)

// ResultCache caches indexed results by source key to avoid redundant
// indexing work within a time window.
type ResultCache interface {
	// GetOrBuild returns the cached result for sourceKey when an entry
	// exists and is younger than the TTL, otherwise invokes build and
	// stores the outcome. The bool result reports whether the result came
	// from cache. A failed build stores nothing, so the next call retries
	// from scratch; failures are never cached.
	GetOrBuild(ctx context.Context, sourceKey string, build BuildFunc) (*Result, bool, error)
}
