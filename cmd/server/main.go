package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"Lagoon/internal/api/middleware"
	"Lagoon/internal/api/routes"
	"Lagoon/internal/auth"
	"Lagoon/internal/config"
	"Lagoon/internal/core/posts"
	"Lagoon/internal/core/uploads"
	"Lagoon/internal/core/users"
	postgresRepo "Lagoon/internal/db/postgres"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("Connected to database")

	// Run migrations
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect:", err)
	}

	if err := goose.Up(db, cfg.MigrationsDir); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	log.Println("Migrations completed successfully")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	verifier, err := auth.NewVerifier(cfg.AuthSecret)
	if err != nil {
		log.Fatal("Failed to initialize token verifier:", err)
	}

	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	authMiddleware := middleware.NewAuthMiddleware(verifier, sessionStore)

	blobStore, err := uploads.NewS3Store(ctx, cfg.S3)
	if err != nil {
		log.Fatal("Failed to initialize blob store:", err)
	}

	// Initialize repositories and services
	postService := posts.NewPostService(postgresRepo.NewPostRepository(db))
	userService := users.NewUserService(postgresRepo.NewUserRepository(db))
	uploadService := uploads.NewUploadService(blobStore, postgresRepo.NewUploadRepository(db))

	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow, cfg.RateLimitTrustProxy)
	r.Use(rateLimiter.Middleware)

	routes.RegisterPostRoutes(r, postService, authMiddleware)
	routes.RegisterUserRoutes(r, userService)
	routes.RegisterUploadRoutes(r, uploadService, authMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed:", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("Shutdown error:", err)
		os.Exit(1)
	}
}
