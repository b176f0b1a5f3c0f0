package user

import (
	"errors"
	"log"
	"net/http"

	"Lagoon/internal/api/handlers"
	"Lagoon/internal/core/users"
)

// handleServiceError maps user service errors to HTTP responses.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, users.ErrQueryTooShort):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Search query must be at least 2 characters")
	case errors.Is(err, users.ErrInvalidSearchField):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Unsupported search field")
	case errors.Is(err, users.ErrNoMatches):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "No users found")
	case errors.Is(err, users.ErrUserNotFound):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "User not found")
	default:
		log.Printf("user handler: unexpected error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Server error")
	}
}
