package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ecovista-backend/infrastructure/config"
	"ecovista-backend/pkg/auth"
)

func testRouter(t *testing.T, authEnabled bool) http.Handler {
	t.Helper()

	cfg := &config.Config{
		Environment:    "development",
		AuthEnabled:    authEnabled,
		AdminEmails:    []string{"admin@test.com"},
		FrontendOrigin: "http://localhost:5173",
	}
	jwtCfg := auth.JWTConfig{SecretKey: "test-secret", TTL: time.Minute}
	issuer, err := auth.NewJWTIssuer(jwtCfg)
	require.NoError(t, err)
	validator, err := auth.NewJWTValidator(jwtCfg)
	require.NoError(t, err)

	// Entity repositories stay nil; these tests never reach them
	rt := NewRouter(cfg, nil, nil, nil, nil, issuer, validator, zap.NewNop())
	return rt.Setup()
}

func TestHealthEndpoints(t *testing.T) {
	handler := testRouter(t, false)

	for _, path := range []string{"/health", "/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	}
}

func TestEntityRoutesRequireSession(t *testing.T) {
	handler := testRouter(t, true)

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDevLoginSessionReachesAllowlist(t *testing.T) {
	handler := testRouter(t, true)

	// dev-login is open and issues the session cookie
	loginReq := httptest.NewRequest(http.MethodPost, "/auth/dev-login", nil)
	loginRec := httptest.NewRecorder()
	handler.ServeHTTP(loginRec, loginReq)
	require.Equal(t, http.StatusOK, loginRec.Code)

	cookies := loginRec.Result().Cookies()
	require.NotEmpty(t, cookies)

	// dev@test.com is not on the allow-list, so a mutation is forbidden
	req := httptest.NewRequest(http.MethodDelete, "/tags/1", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	handler := testRouter(t, true)

	req := httptest.NewRequest(http.MethodOptions, "/articles", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}
