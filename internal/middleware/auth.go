package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sewinggem/template-service/internal/auth"
)

const identityKey contextKey = "identity"

// SessionCookieName is the http-only cookie carrying the session token
const SessionCookieName = "auth-token"

// Auth gates protected routes behind a valid session token. The token is
// read from the auth-token cookie or an Authorization bearer header; any
// missing, invalid or expired token yields a 401 with no data.
func Auth(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var token string

			if cookie, err := r.Cookie(SessionCookieName); err == nil {
				token = cookie.Value
			}

			if token == "" {
				authHeader := r.Header.Get("Authorization")
				if authHeader != "" {
					// Expected format: "Bearer <token>"
					parts := strings.Split(authHeader, " ")
					if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
						token = parts[1]
					}
				}
			}

			if token == "" {
				unauthorized(w, "authentication required")
				return
			}

			identity, ok := tokens.Verify(token)
			if !ok {
				unauthorized(w, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// WithIdentity returns a context carrying the authenticated identity
func WithIdentity(ctx context.Context, identity *auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentity retrieves the authenticated identity from context
func GetIdentity(ctx context.Context) (*auth.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*auth.Identity)
	return identity, ok
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"success":false,"error":"` + message + `"}`))
}
