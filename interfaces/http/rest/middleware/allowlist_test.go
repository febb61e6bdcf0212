package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"ecovista-backend/pkg/auth"
)

func TestAdminAllowlist(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		method     string
		email      string // empty means no principal on the context
		allowed    []string
		wantStatus int
	}{
		{"get passes without principal", http.MethodGet, "", nil, http.StatusOK},
		{"options passes without principal", http.MethodOptions, "", nil, http.StatusOK},
		{"post without principal", http.MethodPost, "", []string{"admin@test.com"}, http.StatusUnauthorized},
		{"post from listed admin", http.MethodPost, "admin@test.com", []string{"admin@test.com"}, http.StatusOK},
		{"post matches case-insensitively", http.MethodPost, "Admin@Test.com", []string{"admin@test.com"}, http.StatusOK},
		{"put from unlisted user", http.MethodPut, "viewer@test.com", []string{"admin@test.com"}, http.StatusForbidden},
		{"delete with empty allow-list", http.MethodDelete, "admin@test.com", nil, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := AdminAllowlist(tt.allowed)(ok)

			req := httptest.NewRequest(tt.method, "/articles", nil)
			if tt.email != "" {
				ctx := auth.SetPrincipal(req.Context(), &auth.Principal{UserID: "u1", Email: tt.email})
				req = req.WithContext(ctx)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
