package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, userID string, expiresAt time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  userID,
		"username": "tester",
		"email":    "tester@example.com",
		"exp":      expiresAt.Unix(),
		"iat":      time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestValidateTokenStringToUUID(t *testing.T) {
	userID := "3f6f7b74-1c9a-4f36-9f42-9b2f9a1f0d11"
	signed := signToken(t, userID, time.Now().Add(time.Hour))

	userCtx, err := ValidateTokenStringToUUID(signed, testSecret)
	require.NoError(t, err)
	assert.Equal(t, userID, userCtx.ID.String())
	assert.Equal(t, "tester", userCtx.Username)
	assert.Equal(t, "tester@example.com", userCtx.Email)
}

func TestValidateTokenTrimsBearerPrefix(t *testing.T) {
	userID := "3f6f7b74-1c9a-4f36-9f42-9b2f9a1f0d11"
	signed := signToken(t, userID, time.Now().Add(time.Hour))

	userCtx, err := ValidateTokenStringToUUID("Bearer "+signed, testSecret)
	require.NoError(t, err)
	assert.Equal(t, userID, userCtx.ID.String())
}

func TestValidateTokenExpired(t *testing.T) {
	signed := signToken(t, "3f6f7b74-1c9a-4f36-9f42-9b2f9a1f0d11", time.Now().Add(-time.Hour))

	_, err := ValidateTokenStringToUUID(signed, testSecret)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	signed := signToken(t, "3f6f7b74-1c9a-4f36-9f42-9b2f9a1f0d11", time.Now().Add(time.Hour))

	_, err := ValidateTokenStringToUUID(signed, "other-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenMissing(t *testing.T) {
	_, err := ValidateTokenStringToUUID("", testSecret)
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestValidateTokenBadUserID(t *testing.T) {
	signed := signToken(t, "not-a-uuid", time.Now().Add(time.Hour))

	_, err := ValidateTokenStringToUUID(signed, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc123", ExtractTokenFromHeader("Bearer abc123"))
	assert.Equal(t, "", ExtractTokenFromHeader(""))
	assert.Equal(t, "", ExtractTokenFromHeader("abc123"))
	assert.Equal(t, "", ExtractTokenFromHeader("Basic abc123"))
}
