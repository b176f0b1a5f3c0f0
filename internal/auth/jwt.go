// Package auth verifies caller identity tokens. Identity resolution is a
// collaborator of the API core: handlers only ever see the resolved user ID
// that the middleware extracts from a verified token.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// MinSecretLength is the smallest accepted HS256 secret
const MinSecretLength = 32

var (
	// ErrInvalidToken is returned for tokens that fail parsing, signature
	// verification, or time-based validation
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrMissingSubject is returned when a valid token carries no user ID
	ErrMissingSubject = errors.New("token has no subject")
)

// Verifier validates HS256 bearer tokens against a shared secret.
// Construct one at startup and inject it; it is safe for concurrent use.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a verifier for the given shared secret
func NewVerifier(secret string) (*Verifier, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("auth secret must be at least %d bytes", MinSecretLength)
	}
	return &Verifier{secret: []byte(secret)}, nil
}

// Verify checks the token's signature and validity window and returns the
// subject (the caller's user ID)
func (v *Verifier) Verify(tokenString string) (string, error) {
	tokenString = StripBearerPrefix(tokenString)

	tok, err := jwt.Parse([]byte(tokenString),
		jwt.WithKey(jwa.HS256, v.secret),
		jwt.WithValidate(true),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	sub := tok.Subject()
	if sub == "" {
		return "", ErrMissingSubject
	}

	return sub, nil
}

// Issuer mints HS256 tokens for a user ID. Used by tooling and tests; the
// production token issuer is an external collaborator sharing the secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates a token issuer with the given secret and token lifetime
func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("auth secret must be at least %d bytes", MinSecretLength)
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}, nil
}

// Mint signs a token for uid
func (i *Issuer) Mint(uid string) (string, error) {
	now := time.Now()
	tok, err := jwt.NewBuilder().
		Subject(uid).
		IssuedAt(now).
		Expiration(now.Add(i.ttl)).
		Build()
	if err != nil {
		return "", fmt.Errorf("failed to build token: %w", err)
	}

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, i.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return string(signed), nil
}

// StripBearerPrefix removes the "Bearer " prefix from an Authorization
// header value
func StripBearerPrefix(tokenString string) string {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	return strings.TrimSpace(tokenString)
}
