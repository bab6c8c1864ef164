package mem

import (
	"encoding/hex"
	"sync"

	"github.com/fwojciec/domindex"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ domindex.SessionStore = (*Sessions)(nil)

// Sessions is an in-memory SessionStore. Entries live for the process
// lifetime; use BoundedSessions when growth must be capped.
// It is safe for concurrent use by multiple goroutines.
type Sessions struct {
	mu      sync.RWMutex
	results map[string]*domindex.Result
}

// NewSessions creates a new Sessions store.
func NewSessions() *Sessions {
	return &Sessions{results: make(map[string]*domindex.Result)}
}

// Put stores result under a freshly minted id and returns the id. One
// result may be stored under any number of ids; ids are never
// overwritten, so a (negligibly likely) collision re-mints.
func (s *Sessions) Put(result *domindex.Result) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := newID()
	for {
		if _, exists := s.results[id]; !exists {
			break
		}
		id = newID()
	}
	s.results[id] = result
	return id
}

// Get returns the result for id. The bool result is false if the id is
// unknown.
func (s *Sessions) Get(id string) (*domindex.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.results[id]
	return result, ok
}

// Len returns the number of stored sessions.
func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}

// newID returns a 16-character hex id carrying 64 bits of randomness,
// taken from the leading bytes of a random UUID.
func newID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:8])
}
