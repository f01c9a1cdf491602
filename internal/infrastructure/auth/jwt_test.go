package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTServiceGenerateAndValidate(t *testing.T) {
	service := NewJWTService(JWTConfig{Secret: "test-secret", Issuer: "test", TokenTTL: time.Hour})

	input := GenerateTokenInput{
		TenantID: uuid.New(),
		UserID:   uuid.New(),
		Email:    "admin@example.com",
		Role:     "ADMIN",
	}

	token, err := service.GenerateToken(input)
	require.NoError(t, err)
	require.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)

	claims, err := service.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, input.TenantID.String(), claims.TenantID)
	assert.Equal(t, input.UserID.String(), claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestJWTServiceRejectsExpiredToken(t *testing.T) {
	service := NewJWTService(JWTConfig{Secret: "test-secret", TokenTTL: -time.Minute})

	token, err := service.GenerateToken(GenerateTokenInput{
		TenantID: uuid.New(),
		UserID:   uuid.New(),
	})
	require.NoError(t, err)

	_, err = service.ValidateToken(token.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTServiceRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService(JWTConfig{Secret: "secret-a", TokenTTL: time.Hour})
	validator := NewJWTService(JWTConfig{Secret: "secret-b", TokenTTL: time.Hour})

	token, err := issuer.GenerateToken(GenerateTokenInput{
		TenantID: uuid.New(),
		UserID:   uuid.New(),
	})
	require.NoError(t, err)

	_, err = validator.ValidateToken(token.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTServiceRejectsGarbage(t *testing.T) {
	service := NewJWTService(JWTConfig{Secret: "test-secret", TokenTTL: time.Hour})

	_, err := service.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-password", hash)

	assert.True(t, VerifyPassword(hash, "s3cret-password"))
	assert.False(t, VerifyPassword(hash, "wrong-password"))
}
