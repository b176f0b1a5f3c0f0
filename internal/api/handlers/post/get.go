package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Lagoon/internal/api/handlers"
)

// HandleGet serves GET /posts/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	post, err := h.service.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, post)
}
