package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/inkwell/inkwell-api/internal/crypto"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the verified claim set attached to the request context.
type Identity struct {
	UserID int64
	Email  string
}

// JWTAuth returns middleware that validates a Bearer token from the
// Authorization header. A missing or malformed header is rejected with 401;
// a token that is present but fails verification is rejected with 400.
// Handlers behind this gate never run without a verified identity.
func JWTAuth(secret string) func(http.Handler) http.Handler {
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
				writeJSONError(w, http.StatusBadRequest, "invalid or expired token")
				return
			}

			identity := Identity{UserID: claims.UserID, Email: claims.Email}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext extracts the authenticated identity from the request context.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
