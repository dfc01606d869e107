package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOfWrapped(t *testing.T) {
	errMissing := NotFound("question not found")
	wrapped := fmt.Errorf("delete %q: %w", "wc_code", errMissing)

	assert.Equal(t, CodeNotFound, CodeOf(wrapped))
	assert.True(t, errors.Is(wrapped, errMissing))

	e, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "question not found", e.Message)
}

func TestCodeOfPlainError(t *testing.T) {
	assert.Equal(t, CodeInternal, CodeOf(errors.New("connection reset")))
	_, ok := As(nil)
	assert.False(t, ok)
}
