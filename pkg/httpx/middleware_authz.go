package httpx

import (
	"net/http"
	"strings"
)

// RequireRole lets the request through only when the authenticated caller
// holds one of the listed portal roles. Must run after AuthnMiddleware.
func RequireRole(allowed ...string) Middleware {
	want := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		want[role] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := RoleFromContext(r.Context())
			if _, ok := want[role]; ok {
				next.ServeHTTP(w, r)
				return
			}
			writeBearerRoleError(w, allowed...)
		})
	}
}

// RFC 6750-style challenge plus the standard error envelope.
func writeBearerRoleError(w http.ResponseWriter, allowed ...string) {
	w.Header().
		Set("WWW-Authenticate", `Bearer error="insufficient_scope", scope="`+strings.Join(allowed, " ")+`"`)
	WriteJSON(w, http.StatusForbidden, map[string]string{
		"error":             "insufficient_role",
		"error_description": "the authenticated user does not have the required role",
	})
}
