package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vite-gourmand/catering-service/internal/models"
	"github.com/vite-gourmand/catering-service/internal/session"
)

// contextKey is a type for context keys
type contextKey string

const identityKey contextKey = "identity"

// Session resolves the session cookie into an identity and stores it on the
// request context. Requests without a valid session pass through
// anonymously; the role gates below decide what that means per route.
func Session(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(store.CookieName())
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := store.Get(r.Context(), cookie.Value)
			if err != nil {
				if err != session.ErrNoSession {
					logrus.WithError(err).Warn("session lookup failed")
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetIdentity(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "Vous devez être connecté.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole rejects requests below the required capability level: 401
// when no session exists at all, 403 when the session's role is
// insufficient. Admin satisfies employee-level checks.
func RequireRole(required models.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := GetIdentity(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "Vous devez être connecté.")
				return
			}

			if !identity.Role.AtLeast(required) {
				switch required {
				case models.RoleAdmin:
					writeError(w, http.StatusForbidden, "Accès réservé aux administrateurs.")
				default:
					writeError(w, http.StatusForbidden, "Accès réservé aux employés.")
				}
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetIdentity extracts the session identity from a request context.
func GetIdentity(ctx context.Context) (*session.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*session.Identity)
	return identity, ok
}

// WithIdentity returns a context carrying an identity. Used by the websocket
// handshake and by tests.
func WithIdentity(ctx context.Context, identity *session.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
