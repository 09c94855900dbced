package validator

import (
	"testing"

	domainerrors "vidgate/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	UserID int64  `json:"user_id" validate:"required,gt=0"`
	Text   string `json:"text" validate:"max=4"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{UserID: 1, Text: "ok"}))

	err := v.Validate(&sample{Text: "too long"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "user_id: required, text: max", appErr.Details())
}
