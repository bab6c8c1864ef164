package domindex

// SessionStore maps opaque short identifiers to indexed results for later
// retrieval by a serving layer. One result may back any number of ids; a
// cache hit mints a fresh id aliasing the same result.
type SessionStore interface {
	// Put stores result under a freshly minted unpredictable id and
	// returns the id. Ids carry at least 48 bits of randomness and are
	// never overwritten.
	Put(result *Result) string

	// Get returns the result for id. The bool result is false if the id
	// is unknown. Get never mutates the store.
	Get(id string) (*Result, bool)
}
