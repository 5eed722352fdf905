package docindex_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/docindex"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := docindex.Errorf(docindex.ENOTFOUND, "index %q not found", "test")

	assert.Equal(t, docindex.ENOTFOUND, docindex.ErrorCode(err))
	assert.Equal(t, "index \"test\" not found", docindex.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docindex.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, docindex.EINTERNAL, docindex.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docindex.ErrorMessage(nil))
}
