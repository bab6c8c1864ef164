package domindex_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/domindex"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := domindex.Errorf(domindex.ENOTFOUND, "session %q not found", "abc123")

	assert.Equal(t, domindex.ENOTFOUND, domindex.ErrorCode(err))
	assert.Equal(t, "session \"abc123\" not found", domindex.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, domindex.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, domindex.EINTERNAL, domindex.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, domindex.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", domindex.ErrorMessage(errors.New("boom")))
}
