package mock

import "github.com/fwojciec/domindex"

var _ domindex.SessionStore = (*SessionStore)(nil)

// SessionStore is a mock implementation of domindex.SessionStore.
type SessionStore struct {
	PutFn func(result *domindex.Result) string
	GetFn func(id string) (*domindex.Result, bool)
}

func (s *SessionStore) Put(result *domindex.Result) string {
	return s.PutFn(result)
}

func (s *SessionStore) Get(id string) (*domindex.Result, bool) {
	return s.GetFn(id)
}
