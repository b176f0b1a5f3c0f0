package routes

import (
	"Lagoon/internal/api/handlers/upload"
	"Lagoon/internal/api/middleware"
	"Lagoon/internal/core/uploads"

	"github.com/go-chi/chi/v5"
)

// RegisterUploadRoutes registers the image upload endpoint.
func RegisterUploadRoutes(r chi.Router, service uploads.Service, authMiddleware *middleware.AuthMiddleware) {
	handler := upload.NewHandler(service)

	r.With(authMiddleware.RequireAuth).Post("/upload", handler.HandleUpload)
}
