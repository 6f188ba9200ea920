package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Username string `validate:"required,min=3,max=30"`
	Email    string `validate:"required,email"`
	Priority string `validate:"omitempty,oneof=low medium high"`
	Color    string `validate:"omitempty,hexcolor"`
}

func TestValidateStructValid(t *testing.T) {
	err := ValidateStruct(&sampleRequest{
		Username: "somchai",
		Email:    "somchai@example.com",
		Priority: "high",
		Color:    "#6366f1",
	})
	assert.NoError(t, err)
}

func TestGetValidationErrors(t *testing.T) {
	err := ValidateStruct(&sampleRequest{
		Username: "ab",
		Email:    "not-an-email",
		Priority: "urgent",
		Color:    "blue",
	})
	require.Error(t, err)

	errors := GetValidationErrors(err)

	assert.Equal(t, "username must be at least 3 characters", errors["username"])
	assert.Equal(t, "invalid email format", errors["email"])
	assert.Equal(t, "priority must be one of: low medium high", errors["priority"])
	assert.Equal(t, "color must be a hex color", errors["color"])
}

func TestGetValidationErrorsRequired(t *testing.T) {
	err := ValidateStruct(&sampleRequest{})
	require.Error(t, err)

	errors := GetValidationErrors(err)
	assert.Equal(t, "username is required", errors["username"])
	assert.Equal(t, "email is required", errors["email"])
	// field ที่เป็น omitempty ไม่ติด error ตอนว่าง
	assert.NotContains(t, errors, "priority")
}
