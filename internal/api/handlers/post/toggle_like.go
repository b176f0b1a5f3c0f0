package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Lagoon/internal/api/handlers"
	"Lagoon/internal/api/middleware"
)

// HandleToggleLike serves POST /posts/{id}/like
// Flips the caller's membership in the post's like set and returns
// the updated post.
func (h *Handler) HandleToggleLike(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "Unauthorized", "Authentication required")
		return
	}

	updated, err := h.service.ToggleLike(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, updated)
}
