package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ecovista-backend/pkg/auth"
)

func devAuthHandler(t *testing.T, production bool) (*AuthHandler, *auth.JWTValidator) {
	t.Helper()
	cfg := auth.JWTConfig{SecretKey: "test-secret", TTL: time.Minute}
	issuer, err := auth.NewJWTIssuer(cfg)
	require.NoError(t, err)
	validator, err := auth.NewJWTValidator(cfg)
	require.NoError(t, err)
	return NewAuthHandler(issuer, production, zap.NewNop()), validator
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "access_token" {
			return c
		}
	}
	t.Fatal("no access_token cookie set")
	return nil
}

func TestDevLoginIssuesSessionCookie(t *testing.T) {
	h, validator := devAuthHandler(t, false)

	body := `{"email":"ana@test.com","name":"Ana"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/dev-login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.DevLogin(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"user":{"email":"ana@test.com","name":"Ana"}}`, rec.Body.String())

	cookie := sessionCookie(t, rec)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)

	// The cookie round-trips through the validator
	p, err := validator.Validate(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "ana@test.com", p.Email)
	assert.Equal(t, "Ana", p.Name)
}

func TestDevLoginDefaultsWithoutBody(t *testing.T) {
	h, _ := devAuthHandler(t, false)

	req := httptest.NewRequest(http.MethodPost, "/auth/dev-login", nil)
	rec := httptest.NewRecorder()
	h.DevLogin(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"user":{"email":"dev@test.com","name":"Dev User"}}`, rec.Body.String())
}

func TestDevLoginDisabledInProduction(t *testing.T) {
	h, _ := devAuthHandler(t, true)

	req := httptest.NewRequest(http.MethodPost, "/auth/dev-login", nil)
	rec := httptest.NewRecorder()
	h.DevLogin(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDevLogoutClearsCookie(t *testing.T) {
	h, _ := devAuthHandler(t, false)

	req := httptest.NewRequest(http.MethodPost, "/auth/dev-logout", nil)
	rec := httptest.NewRecorder()
	h.DevLogout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookie(t, rec)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
