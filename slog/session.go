package slog

import (
	"log/slog"

	"github.com/fwojciec/domindex"
)

// Ensure LoggingSessions implements domindex.SessionStore.
var _ domindex.SessionStore = (*LoggingSessions)(nil)

// LoggingSessions wraps a SessionStore with logging.
type LoggingSessions struct {
	next   domindex.SessionStore
	logger *slog.Logger
}

// NewLoggingSessions creates a new LoggingSessions.
func NewLoggingSessions(next domindex.SessionStore, logger *slog.Logger) *LoggingSessions {
	return &LoggingSessions{next: next, logger: logger}
}

// Put delegates to the wrapped store and logs the minted id.
func (s *LoggingSessions) Put(result *domindex.Result) string {
	id := s.next.Put(result)
	s.logger.Info("session created",
		"id", id,
		"source", result.Meta.SourceURL,
	)
	return id
}

// Get delegates to the wrapped store and logs the lookup outcome.
func (s *LoggingSessions) Get(id string) (*domindex.Result, bool) {
	result, ok := s.next.Get(id)
	s.logger.Debug("session lookup",
		"id", id,
		"found", ok,
	)
	return result, ok
}
