package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelWrapping(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		err := NotFound("chat session")
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.Contains(t, err.Error(), "chat session")
	})

	t.Run("validation", func(t *testing.T) {
		err := Validation("title too long")
		assert.True(t, errors.Is(err, ErrValidation))
		assert.Contains(t, err.Error(), "title too long")
	})

	t.Run("unauthorized", func(t *testing.T) {
		err := Unauthorized("invalid credentials")
		assert.True(t, errors.Is(err, ErrUnauthorized))
	})

	t.Run("backend unavailable keeps cause text", func(t *testing.T) {
		cause := fmt.Errorf("dial tcp: connection refused")
		err := BackendUnavailable(cause)
		assert.True(t, errors.Is(err, ErrBackendUnavailable))
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("sentinels are distinct", func(t *testing.T) {
		assert.False(t, errors.Is(NotFound("x"), ErrValidation))
		assert.False(t, errors.Is(Validation("x"), ErrNotFound))
	})
}
