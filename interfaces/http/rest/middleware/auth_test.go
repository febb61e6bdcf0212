package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecovista-backend/pkg/auth"
)

func testTokenPair(t *testing.T) (*auth.JWTIssuer, *auth.JWTValidator) {
	t.Helper()
	cfg := auth.JWTConfig{SecretKey: "test-secret", TTL: time.Minute}
	issuer, err := auth.NewJWTIssuer(cfg)
	require.NoError(t, err)
	validator, err := auth.NewJWTValidator(cfg)
	require.NoError(t, err)
	return issuer, validator
}

func principalEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, err := auth.PrincipalFrom(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Write([]byte(p.Email))
	})
}

func TestAuthenticateValidCookie(t *testing.T) {
	issuer, validator := testTokenPair(t)

	token, err := issuer.Sign(auth.Principal{UserID: "u1", Email: "dev@test.com"})
	require.NoError(t, err)

	handler := Authenticate(validator)(principalEcho())

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dev@test.com", rec.Body.String())
}

func TestAuthenticateMissingCookie(t *testing.T) {
	_, validator := testTokenPair(t)
	handler := Authenticate(validator)(principalEcho())

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"not authenticated"}`, rec.Body.String())
}

func TestAuthenticateBadToken(t *testing.T) {
	_, validator := testTokenPair(t)
	handler := Authenticate(validator)(principalEcho())

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: "garbage"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"invalid or expired session"}`, rec.Body.String())
}
