package middleware

import (
	"net/http"

	"ecovista-backend/pkg/auth"
	"ecovista-backend/pkg/common"
)

const sessionCookieName = "access_token"

// Authenticate validates the JWT session cookie and attaches the principal
// to the request context. Requests without a valid cookie get 401 and never
// reach the entity routes.
func Authenticate(validator *auth.JWTValidator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			if err != nil || cookie.Value == "" {
				common.RespondError(w, http.StatusUnauthorized, "not authenticated")
				return
			}

			principal, err := validator.Validate(cookie.Value)
			if err != nil {
				common.RespondError(w, http.StatusUnauthorized, "invalid or expired session")
				return
			}

			ctx := auth.SetPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
