// internal/server/handlers/middleware.go

package handlers

import (
	"context"
	"net/http"
	"strings"

	"trendscope/internal/domain/identity"
)

// AuthService verifies credentials and bearer tokens for the HTTP layer.
type AuthService interface {
	Login(email, password string) (string, *identity.User, error)
	Verify(token string) (*identity.User, error)
}

type contextKey string

const userContextKey contextKey = "user"

// RequireAuth gates a route group behind bearer-token authentication. The
// authenticated user is stored in the request context; unauthenticated calls
// never reach the wrapped handler.
func RequireAuth(auth AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				respondWithError(w, http.StatusUnauthorized, "Missing authorization header", nil)
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "Malformed authorization header", nil)
				return
			}

			user, err := auth.Verify(token)
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid or expired token", nil)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the authenticated user, if any.
func UserFromContext(ctx context.Context) (*identity.User, bool) {
	user, ok := ctx.Value(userContextKey).(*identity.User)
	return user, ok
}
