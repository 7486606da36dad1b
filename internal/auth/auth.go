// Package auth carries the authenticated identity through HTTP requests.
// Token issuance and validation live in the user service; this package only
// defines the identity, the middleware, and the parser contract between
// them.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Identity is the authenticated principal for one request.
type Identity struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// TokenParser validates a bearer token and resolves its identity.
type TokenParser interface {
	ParseToken(token string) (*Identity, error)
}

type contextKey string

const identityKey contextKey = "wecare.identity"

// IdentityFrom extracts the identity placed in the context by
// Authenticator. The second return is false on unauthenticated requests.
func IdentityFrom(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey).(*Identity)
	return id, ok
}

// Authenticator rejects requests without a valid bearer token and stores
// the resolved identity in the request context.
func Authenticator(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "Missing bearer token", http.StatusUnauthorized)
				return
			}
			identity, err := parser.ParseToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin guards admin-only routes. It must run after Authenticator.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFrom(r.Context())
		if !ok || !identity.IsAdmin {
			http.Error(w, "Admin access required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
