package routes

import (
	"Lagoon/internal/api/handlers/post"
	"Lagoon/internal/api/middleware"
	"Lagoon/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// RegisterPostRoutes registers the post feed and mutation endpoints.
func RegisterPostRoutes(r chi.Router, service posts.Service, authMiddleware *middleware.AuthMiddleware) {
	handler := post.NewHandler(service)

	// Query endpoints (GET) - public access, viewer identity attached
	// when a valid credential is present
	r.With(authMiddleware.OptionalAuth).Get("/posts", handler.HandleList)
	r.With(authMiddleware.OptionalAuth).Get("/posts/{id}", handler.HandleGet)

	// Mutation endpoints - require authentication
	r.With(authMiddleware.RequireAuth).Post("/posts", handler.HandleCreate)
	r.With(authMiddleware.RequireAuth).Put("/posts/{id}", handler.HandleUpdate)
	r.With(authMiddleware.RequireAuth).Delete("/posts/{id}", handler.HandleDelete)
	r.With(authMiddleware.RequireAuth).Post("/posts/{id}/like", handler.HandleToggleLike)
}
