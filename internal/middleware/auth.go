package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/homequest/homequest-go/internal/crypto"
	"github.com/homequest/homequest-go/internal/model"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the caller identity a session token asserts. The role is
// not part of the token; RequireRole fetches it from the user store.
type Identity struct {
	ID   int64
	Name string
}

// RoleSource looks up a user so their role can be checked per request.
type RoleSource interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// Authenticate returns middleware that validates a Bearer token from
// the Authorization header and attaches the caller identity to the
// request context.
func Authenticate(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			identity := Identity{ID: claims.UserID, Name: claims.Name}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole returns middleware that rejects callers whose stored role
// is not in the allowed set. Must run after Authenticate.
func RequireRole(users RoleSource, roles ...model.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			user, err := users.GetByID(r.Context(), identity.ID)
			if err != nil {
				writeJSONError(w, http.StatusForbidden, "forbidden")
				return
			}

			for _, role := range roles {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			writeJSONError(w, http.StatusForbidden, "forbidden")
		})
	}
}

// IdentityFromContext extracts the authenticated caller identity from
// the request context.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
