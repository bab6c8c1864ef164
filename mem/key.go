// Package mem provides in-memory implementations of the result cache and
// the session store. Both are process-lifetime only; nothing is persisted.
package mem

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// SourceKey derives the cache key for a source identifier using xxHash
// of the exact string. Identifiers that differ textually (trailing slash,
// query-parameter order) map to distinct keys: the cost of the missed
// share is a duplicate build, never a wrong answer.
func SourceKey(source string) string {
	h := xxhash.Sum64String(source)
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, h)
	return hex.EncodeToString(b)
}
