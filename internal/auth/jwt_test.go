package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt-signing-0001"

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService(testSecret, 15*time.Minute)

	token, expiresAt, err := svc.GenerateAccessToken("orbital", "admin")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, time.Minute)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "orbital", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "orbital", claims.Subject)
}

func TestJWTService_ValidateAccessToken_Garbage(t *testing.T) {
	svc := NewJWTService(testSecret, 15*time.Minute)

	_, err := svc.ValidateAccessToken("not-a-token")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ValidateAccessToken_WrongKey(t *testing.T) {
	svc := NewJWTService(testSecret, 15*time.Minute)
	other := NewJWTService("another-secret-key-entirely-000000", 15*time.Minute)

	token, _, err := svc.GenerateAccessToken("orbital", "admin")
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ValidateAccessToken_Expired(t *testing.T) {
	svc := NewJWTService(testSecret, -time.Minute)

	token, _, err := svc.GenerateAccessToken("orbital", "admin")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}
