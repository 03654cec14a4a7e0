package readmode_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/readmode"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := readmode.Errorf(readmode.ENOTFOUND, "no main content in %q", "https://example.com")

	assert.Equal(t, readmode.ENOTFOUND, readmode.ErrorCode(err))
	assert.Equal(t, "no main content in \"https://example.com\"", readmode.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, readmode.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, readmode.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch: %w", readmode.Errorf(readmode.ETIMEOUT, "request timed out"))

	assert.Equal(t, readmode.ETIMEOUT, readmode.ErrorCode(err))
	assert.Equal(t, "request timed out", readmode.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk on fire")

	assert.Equal(t, readmode.EINTERNAL, readmode.ErrorCode(err))
	assert.Equal(t, "Internal error.", readmode.ErrorMessage(err))
}
