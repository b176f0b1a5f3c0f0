package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Lagoon/internal/api/handlers"
	"Lagoon/internal/api/middleware"
)

// HandleDelete serves DELETE /posts/{id}
// Owner only; responds 204 with no body on success.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "Unauthorized", "Authentication required")
		return
	}

	if err := h.service.DeletePost(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
