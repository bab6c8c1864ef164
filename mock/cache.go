// Package mock provides function-field mock implementations of the
// domindex interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/domindex"
)

var _ domindex.ResultCache = (*ResultCache)(nil)

// ResultCache is a mock implementation of domindex.ResultCache.
type ResultCache struct {
	GetOrBuildFn func(ctx context.Context, sourceKey string, build domindex.BuildFunc) (*domindex.Result, bool, error)
}

func (c *ResultCache) GetOrBuild(ctx context.Context, sourceKey string, build domindex.BuildFunc) (*domindex.Result, bool, error) {
	return c.GetOrBuildFn(ctx, sourceKey, build)
}
