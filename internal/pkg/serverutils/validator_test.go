package serverutils

import (
	"errors"
	"testing"

	"nutrition-assistant-be/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Email string `validate:"required,email"`
	Name  string `validate:"required,min=3"`
}

func TestValidateRequest(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		err := ValidateRequest(sampleRequest{Email: "a@b.com", Name: "Alice"})
		assert.NoError(t, err)
	})

	t.Run("invalid request returns validation error", func(t *testing.T) {
		err := ValidateRequest(sampleRequest{Email: "not-an-email", Name: "x"})
		assert.True(t, errors.Is(err, apperr.ErrValidation))
		assert.Contains(t, err.Error(), "Email")
		assert.Contains(t, err.Error(), "Name")
	})

	t.Run("missing fields reported", func(t *testing.T) {
		err := ValidateRequest(sampleRequest{})
		assert.True(t, errors.Is(err, apperr.ErrValidation))
		assert.Contains(t, err.Error(), "required")
	})
}
