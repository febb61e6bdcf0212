package middleware

import (
	"net/http"
	"strings"

	"ecovista-backend/pkg/auth"
	"ecovista-backend/pkg/common"
)

// readOnlyMethods always pass the allow-list check
var readOnlyMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodOptions: true,
}

// AdminAllowlist restricts mutating methods to a configured set of email
// addresses. Read-only methods pass untouched. Requests without an
// authenticated principal get 401; authenticated but unlisted users get 403.
func AdminAllowlist(allowedEmails []string) func(next http.Handler) http.Handler {
	allowed := make(map[string]bool, len(allowedEmails))
	for _, email := range allowedEmails {
		allowed[strings.ToLower(strings.TrimSpace(email))] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if readOnlyMethods[r.Method] {
				next.ServeHTTP(w, r)
				return
			}

			principal, err := auth.PrincipalFrom(r.Context())
			if err != nil || principal.Email == "" {
				common.RespondError(w, http.StatusUnauthorized, "not authenticated")
				return
			}

			if !allowed[strings.ToLower(principal.Email)] {
				common.RespondError(w, http.StatusForbidden, "forbidden: read-only user")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
