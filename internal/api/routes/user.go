package routes

import (
	"Lagoon/internal/api/handlers/user"
	"Lagoon/internal/core/users"

	"github.com/go-chi/chi/v5"
)

// RegisterUserRoutes registers the user listing, search, and profile
// endpoints. Search routes are registered before the {uid} wildcard so
// "search" is never captured as a user ID.
func RegisterUserRoutes(r chi.Router, service users.Service) {
	handler := user.NewHandler(service)

	r.Get("/users", handler.HandleList)
	r.Get("/users/search", handler.HandleSearch)
	r.Get("/users/search/{username}", handler.HandleSearchByUsername)
	r.Get("/users/{uid}", handler.HandleGetProfile)
	r.Put("/users/{uid}", handler.HandleUpdateProfile)
}
