package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Lagoon/internal/auth"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestMiddleware(t *testing.T, store sessions.Store) (*AuthMiddleware, *auth.Issuer) {
	verifier, err := auth.NewVerifier(testSecret)
	require.NoError(t, err)
	issuer, err := auth.NewIssuer(testSecret, time.Hour)
	require.NoError(t, err)
	return NewAuthMiddleware(verifier, store), issuer
}

func echoUserID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(GetUserID(r)))
	})
}

func TestRequireAuth_ValidBearer(t *testing.T) {
	m, issuer := newTestMiddleware(t, nil)

	token, err := issuer.Mint("u1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/posts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	m.RequireAuth(echoUserID()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", w.Body.String())
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	m, _ := newTestMiddleware(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/posts", nil)
	w := httptest.NewRecorder()

	m.RequireAuth(echoUserID()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized")
}

func TestRequireAuth_MalformedAndInvalidTokens(t *testing.T) {
	m, _ := newTestMiddleware(t, nil)

	for _, header := range []string{"Basic abc", "Bearer not-a-jwt", "Bearer "} {
		req := httptest.NewRequest(http.MethodPost, "/posts", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()

		m.RequireAuth(echoUserID()).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q should be rejected", header)
	}
}

func TestRequireAuth_SessionCookie(t *testing.T) {
	store := sessions.NewCookieStore([]byte(testSecret))
	m, _ := newTestMiddleware(t, store)

	// Log a session in by round-tripping the Set-Cookie header
	seed := httptest.NewRequest(http.MethodGet, "/", nil)
	seedW := httptest.NewRecorder()
	session, err := store.Get(seed, SessionName)
	require.NoError(t, err)
	session.Values["uid"] = "cookie-user"
	require.NoError(t, session.Save(seed, seedW))

	req := httptest.NewRequest(http.MethodPost, "/posts", nil)
	for _, c := range seedW.Result().Cookies() {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()

	m.RequireAuth(echoUserID()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cookie-user", w.Body.String())
}

func TestRequireAuth_InvalidBearerDoesNotFallBackToSession(t *testing.T) {
	store := sessions.NewCookieStore([]byte(testSecret))
	m, _ := newTestMiddleware(t, store)

	seed := httptest.NewRequest(http.MethodGet, "/", nil)
	seedW := httptest.NewRecorder()
	session, _ := store.Get(seed, SessionName)
	session.Values["uid"] = "cookie-user"
	require.NoError(t, session.Save(seed, seedW))

	req := httptest.NewRequest(http.MethodPost, "/posts", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	for _, c := range seedW.Result().Cookies() {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()

	m.RequireAuth(echoUserID()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuth_AnonymousPasses(t *testing.T) {
	m, _ := newTestMiddleware(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	w := httptest.NewRecorder()

	m.OptionalAuth(echoUserID()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", w.Body.String())
}
