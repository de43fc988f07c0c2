package validator

import (
	"testing"

	domainerrors "rental/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&signup{Email: "a@example.com", Password: "long-enough"}))

	err := v.Validate(&signup{Email: "nope", Password: "short"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "email: email")
	assert.Contains(t, appErr.Details(), "password: min=8")
}

type booking struct {
	PropertyID string `json:"property_id" validate:"required,uuid"`
}

func TestValidator_ReportsJSONNames(t *testing.T) {
	err := New().Validate(&booking{PropertyID: "not-a-uuid"})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "property_id: uuid", appErr.Details())
}
