package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"

	"Lagoon/internal/auth"
)

// contextKey is a private type for context values set by this package
type contextKey string

// UserIDKey holds the authenticated caller's user ID in the request context
const UserIDKey contextKey = "user_id"

// SessionName is the cookie session carrying a browser login
const SessionName = "lagoon_session"

// sessionUIDKey is the session value holding the user ID
const sessionUIDKey = "uid"

// AuthMiddleware resolves caller identity from a bearer JWT or, failing
// that, a signed session cookie. Both dependencies are injected.
type AuthMiddleware struct {
	verifier *auth.Verifier
	store    sessions.Store
}

// NewAuthMiddleware creates the auth middleware. store may be nil when
// cookie sessions are not configured.
func NewAuthMiddleware(verifier *auth.Verifier, store sessions.Store) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, store: store}
}

// RequireAuth ensures the caller is authenticated, returning 401 otherwise.
// On success the user ID is injected into the request context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok := m.identify(r)
		if !ok {
			writeAuthError(w, "Authentication required")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), UserIDKey, uid)))
	})
}

// OptionalAuth injects the user ID when a valid credential is present but
// lets anonymous requests through
func (m *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if uid, ok := m.identify(r); ok {
			r = r.WithContext(context.WithValue(r.Context(), UserIDKey, uid))
		}
		next.ServeHTTP(w, r)
	})
}

// identify resolves the caller identity. A present Authorization header is
// authoritative: an invalid bearer token fails the request rather than
// falling through to the session cookie.
func (m *AuthMiddleware) identify(r *http.Request) (string, bool) {
	if header := r.Header.Get("Authorization"); header != "" {
		if !strings.HasPrefix(header, "Bearer ") {
			return "", false
		}
		uid, err := m.verifier.Verify(header)
		if err != nil {
			log.Printf("[AUTH_FAILURE] ip=%s method=%s path=%s error=%v",
				r.RemoteAddr, r.Method, r.URL.Path, err)
			return "", false
		}
		return uid, true
	}

	if m.store != nil {
		if session, err := m.store.Get(r, SessionName); err == nil {
			if uid, ok := session.Values[sessionUIDKey].(string); ok && uid != "" {
				return uid, true
			}
		}
	}

	return "", false
}

// GetUserID returns the authenticated user ID from the request context, or
// empty string for anonymous requests
func GetUserID(r *http.Request) string {
	uid, _ := r.Context().Value(UserIDKey).(string)
	return uid
}

// SetTestUserID sets the user ID in the context for testing purposes
// without going through actual authentication
func SetTestUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error":   "Unauthorized",
		"message": message,
	}); err != nil {
		log.Printf("Failed to encode auth error response: %v", err)
	}
}
