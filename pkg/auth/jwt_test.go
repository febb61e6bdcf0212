package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndValidate(t *testing.T) {
	cfg := JWTConfig{SecretKey: "test-secret", Issuer: "test", TTL: time.Minute}

	issuer, err := NewJWTIssuer(cfg)
	require.NoError(t, err)
	validator, err := NewJWTValidator(cfg)
	require.NoError(t, err)

	token, err := issuer.Sign(Principal{
		UserID: "user-1",
		Email:  "dev@test.com",
		Name:   "Dev User",
		Roles:  []string{"admin"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	p, err := validator.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, "dev@test.com", p.Email)
	assert.Equal(t, "Dev User", p.Name)
	assert.Equal(t, []string{"admin"}, p.Roles)
}

func TestValidateWrongSecret(t *testing.T) {
	issuer, err := NewJWTIssuer(JWTConfig{SecretKey: "secret-a", TTL: time.Minute})
	require.NoError(t, err)
	validator, err := NewJWTValidator(JWTConfig{SecretKey: "secret-b"})
	require.NoError(t, err)

	token, err := issuer.Sign(Principal{UserID: "user-1"})
	require.NoError(t, err)

	_, err = validator.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateExpiredToken(t *testing.T) {
	issuer, err := NewJWTIssuer(JWTConfig{SecretKey: "test-secret", TTL: time.Nanosecond})
	require.NoError(t, err)
	validator, err := NewJWTValidator(JWTConfig{SecretKey: "test-secret"})
	require.NoError(t, err)

	token, err := issuer.Sign(Principal{UserID: "user-1"})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = validator.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateGarbage(t *testing.T) {
	validator, err := NewJWTValidator(JWTConfig{SecretKey: "test-secret"})
	require.NoError(t, err)

	_, err = validator.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewJWTIssuerRequiresSecret(t *testing.T) {
	_, err := NewJWTIssuer(JWTConfig{})
	assert.Error(t, err)
}

func TestIssuerDefaultTTL(t *testing.T) {
	issuer, err := NewJWTIssuer(JWTConfig{SecretKey: "test-secret"})
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, issuer.TTL())
}
