package mem_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/domindex"
	"github.com/fwojciec/domindex/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func testResult(sourceURL string) *domindex.Result {
	return &domindex.Result{
		Meta:  domindex.Meta{SourceURL: sourceURL, Title: "No title"},
		Index: domindex.NewIndex(),
	}
}

func TestCacheGetOrBuild(t *testing.T) {
	t.Parallel()

	t.Run("builds on first call and hits within TTL", func(t *testing.T) {
		t.Parallel()

		cache := mem.NewCache()
		builds := 0
		build := func(ctx context.Context) (*domindex.Result, error) {
			builds++
			return testResult("u1"), nil
		}

		first, hit, err := cache.GetOrBuild(context.Background(), "u1", build)
		require.NoError(t, err)
		assert.False(t, hit)

		second, hit, err := cache.GetOrBuild(context.Background(), "u1", build)
		require.NoError(t, err)
		assert.True(t, hit)
		assert.Same(t, first, second)
		assert.Equal(t, 1, builds)
	})

	t.Run("entry at age TTL-1 is a hit, TTL+1 rebuilds", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		cache := mem.NewCache(mem.WithClock(clock.Now))
		builds := 0
		build := func(ctx context.Context) (*domindex.Result, error) {
			builds++
			return testResult("u1"), nil
		}

		_, _, err := cache.GetOrBuild(context.Background(), "u1", build)
		require.NoError(t, err)

		clock.Advance(domindex.CacheTTL - time.Second)
		_, hit, err := cache.GetOrBuild(context.Background(), "u1", build)
		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, 1, builds)

		clock.Advance(2 * time.Second) // now TTL+1 past creation
		_, hit, err = cache.GetOrBuild(context.Background(), "u1", build)
		require.NoError(t, err)
		assert.False(t, hit)
		assert.Equal(t, 2, builds)
	})

	t.Run("failed build leaves no entry and the next call retries", func(t *testing.T) {
		t.Parallel()

		cache := mem.NewCache()
		calls := 0

		_, _, err := cache.GetOrBuild(context.Background(), "bad", func(ctx context.Context) (*domindex.Result, error) {
			calls++
			return nil, domindex.Errorf(domindex.EINVALID, "malformed document")
		})
		require.Error(t, err)
		assert.Equal(t, domindex.EINVALID, domindex.ErrorCode(err))
		assert.Equal(t, 0, cache.Len())

		result, hit, err := cache.GetOrBuild(context.Background(), "bad", func(ctx context.Context) (*domindex.Result, error) {
			calls++
			return testResult("bad"), nil
		})
		require.NoError(t, err)
		assert.False(t, hit)
		assert.NotNil(t, result)
		assert.Equal(t, 2, calls)
	})

	t.Run("distinct keys build independently", func(t *testing.T) {
		t.Parallel()

		cache := mem.NewCache()
		builds := 0
		build := func(ctx context.Context) (*domindex.Result, error) {
			builds++
			return testResult("x"), nil
		}

		_, _, err := cache.GetOrBuild(context.Background(), "a", build)
		require.NoError(t, err)
		_, _, err = cache.GetOrBuild(context.Background(), "b", build)
		require.NoError(t, err)

		assert.Equal(t, 2, builds)
		assert.Equal(t, 2, cache.Len())
	})

	t.Run("concurrent misses on one key share a single build", func(t *testing.T) {
		t.Parallel()

		cache := mem.NewCache()
		var mu sync.Mutex
		builds := 0
		release := make(chan struct{})
		build := func(ctx context.Context) (*domindex.Result, error) {
			mu.Lock()
			builds++
			mu.Unlock()
			<-release
			return testResult("u1"), nil
		}

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _, err := cache.GetOrBuild(context.Background(), "u1", build)
				assert.NoError(t, err)
			}()
		}
		time.Sleep(50 * time.Millisecond) // let callers pile onto the flight
		close(release)
		wg.Wait()

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, 1, builds)
	})
}

func TestSourceKey(t *testing.T) {
	t.Parallel()

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, mem.SourceKey("https://example.com/"), mem.SourceKey("https://example.com/"))
	})

	t.Run("textually distinct identifiers get distinct keys", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, mem.SourceKey("https://example.com"), mem.SourceKey("https://example.com/"))
		assert.NotEqual(t, mem.SourceKey("https://example.com/?a=1&b=2"), mem.SourceKey("https://example.com/?b=2&a=1"))
	})

	t.Run("fixed-width hex", func(t *testing.T) {
		t.Parallel()

		key := mem.SourceKey("anything")
		assert.Len(t, key, 16)
	})
}
