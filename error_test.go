package secfilings_test

import (
	"errors"
	"testing"

	secfilings "github.com/Guest400123064/parse-sec-filings"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := secfilings.Errorf(secfilings.ENOBOUNDARY, "no boundary for %q", "test")

	assert.Equal(t, secfilings.ENOBOUNDARY, secfilings.ErrorCode(err))
	assert.Equal(t, "no boundary for \"test\"", secfilings.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, secfilings.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, secfilings.EINTERNAL, secfilings.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, secfilings.ErrorMessage(nil))
}
