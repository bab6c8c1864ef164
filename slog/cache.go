// Package slog provides logging decorators for the result cache and the
// session store using the standard library structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/domindex"
)

// Ensure LoggingCache implements domindex.ResultCache.
var _ domindex.ResultCache = (*LoggingCache)(nil)

// LoggingCache wraps a ResultCache with per-lookup logging.
type LoggingCache struct {
	next   domindex.ResultCache
	logger *slog.Logger
}

// NewLoggingCache creates a new LoggingCache.
func NewLoggingCache(next domindex.ResultCache, logger *slog.Logger) *LoggingCache {
	return &LoggingCache{next: next, logger: logger}
}

// GetOrBuild delegates to the wrapped cache and logs the outcome.
func (c *LoggingCache) GetOrBuild(ctx context.Context, sourceKey string, build domindex.BuildFunc) (*domindex.Result, bool, error) {
	begin := time.Now()
	result, hit, err := c.next.GetOrBuild(ctx, sourceKey, build)
	if err != nil {
		c.logger.Error("index build failed",
			"key", sourceKey,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, false, err
	}
	c.logger.Info("index lookup",
		"key", sourceKey,
		"cache_hit", hit,
		"duration", time.Since(begin),
	)
	return result, hit, nil
}
