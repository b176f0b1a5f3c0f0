package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"Lagoon/internal/core/uploads"
)

// Config validation errors
var (
	// ErrMissingDatabaseURL is returned when DatabaseURL is empty
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is required")
	// ErrShortAuthSecret is returned when AuthSecret is shorter than 32 bytes
	ErrShortAuthSecret = errors.New("AUTH_SECRET must be at least 32 bytes")
	// ErrShortSessionSecret is returned when SessionSecret is shorter than 32 bytes
	ErrShortSessionSecret = errors.New("SESSION_SECRET must be at least 32 bytes")
	// ErrInvalidRateLimit is returned when the rate limit settings are not positive
	ErrInvalidRateLimit = errors.New("rate limit settings must be positive")
)

// Config holds the server configuration.
type Config struct {
	// Port the HTTP server listens on.
	Port string

	// DatabaseURL is the Postgres connection string.
	DatabaseURL string

	// MigrationsDir is the path to the goose migration files.
	MigrationsDir string

	// AuthSecret is the HMAC secret for access tokens.
	AuthSecret string

	// SessionSecret signs the session cookie.
	SessionSecret string

	// RateLimitRequests is the number of requests allowed per window per client.
	RateLimitRequests int

	// RateLimitWindow is the fixed rate-limit window.
	RateLimitWindow time.Duration

	// RateLimitTrustProxy keys the limiter on X-Forwarded-For / X-Real-IP.
	// Enable only when a trusted proxy sets those headers.
	RateLimitTrustProxy bool

	// S3 holds the blob storage settings for image uploads.
	S3 uploads.S3Config
}

// Validate checks the config invariants.
func (c Config) Validate() error {
	if c.DatabaseURL == "" {
		return ErrMissingDatabaseURL
	}
	if len(c.AuthSecret) < 32 {
		return ErrShortAuthSecret
	}
	if len(c.SessionSecret) < 32 {
		return ErrShortSessionSecret
	}
	if c.RateLimitRequests <= 0 || c.RateLimitWindow <= 0 {
		return fmt.Errorf("%w: got %d per %v", ErrInvalidRateLimit, c.RateLimitRequests, c.RateLimitWindow)
	}
	return nil
}

// Default returns a Config with development defaults. Secrets have no
// defaults and must come from the environment.
func Default() Config {
	return Config{
		Port:              "8080",
		MigrationsDir:     "internal/db/migrations",
		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
	}
}

// FromEnv creates a Config from environment variables, falling back to
// defaults for any that are unset.
//
// Environment variables:
//   - PORT: HTTP listen port (default: 8080)
//   - DATABASE_URL: Postgres connection string (required)
//   - MIGRATIONS_DIR: goose migrations path (default: internal/db/migrations)
//   - AUTH_SECRET: HMAC secret for access tokens (required, min 32 bytes)
//   - SESSION_SECRET: session cookie signing key (required, min 32 bytes)
//   - RATE_LIMIT_REQUESTS: requests allowed per window (default: 100)
//   - RATE_LIMIT_WINDOW_SECONDS: window length in seconds (default: 60)
//   - RATE_LIMIT_TRUST_PROXY: "true"/"1" to key on forwarded headers
//     (default: false)
//   - S3_ENDPOINT, S3_REGION, S3_BUCKET, S3_ACCESS_KEY, S3_SECRET_KEY,
//     S3_PUBLIC_BASE_URL: blob storage settings for image uploads
func FromEnv() (Config, error) {
	cfg := Default()

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		cfg.MigrationsDir = v
	}
	cfg.AuthSecret = os.Getenv("AUTH_SECRET")
	cfg.SessionSecret = os.Getenv("SESSION_SECRET")

	if v := os.Getenv("RATE_LIMIT_REQUESTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimitRequests = n
		}
	}
	if v := os.Getenv("RATE_LIMIT_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimitWindow = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("RATE_LIMIT_TRUST_PROXY"); v != "" {
		cfg.RateLimitTrustProxy = v == "true" || v == "1"
	}

	cfg.S3 = uploads.S3Config{
		Endpoint:      os.Getenv("S3_ENDPOINT"),
		Region:        os.Getenv("S3_REGION"),
		Bucket:        os.Getenv("S3_BUCKET"),
		AccessKey:     os.Getenv("S3_ACCESS_KEY"),
		SecretKey:     os.Getenv("S3_SECRET_KEY"),
		PublicBaseURL: os.Getenv("S3_PUBLIC_BASE_URL"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
