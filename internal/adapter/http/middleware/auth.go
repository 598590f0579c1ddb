package middleware

import (
	"context"
	"net/http"

	"github.com/fletero/backoffice/internal/domain"
	"github.com/fletero/backoffice/internal/infrastructure/auth"
)

// ContextKey is the type for context keys.
type ContextKey string

const (
	// PrincipalContextKey is the context key for the authenticated actor.
	PrincipalContextKey ContextKey = "principal"
)

// AuthMiddleware verifies the session cookie and attaches the principal
// to the request context. Location scoping downstream relies on the
// principal, so unauthenticated requests never reach the handlers.
func AuthMiddleware(jwtManager *auth.JWTManager, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil {
				http.Error(w, "missing session cookie", http.StatusUnauthorized)
				return
			}

			claims, err := jwtManager.Verify(cookie.Value)
			if err != nil {
				http.Error(w, "invalid or expired session", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), PrincipalContextKey, claims.Principal())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects requests whose principal is not an admin.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := PrincipalFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !actor.IsAdmin() {
			http.Error(w, "insufficient permissions", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// PrincipalFromContext extracts the authenticated actor from context.
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	actor, ok := ctx.Value(PrincipalContextKey).(domain.Principal)
	return actor, ok
}
