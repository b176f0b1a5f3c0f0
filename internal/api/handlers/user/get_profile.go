package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Lagoon/internal/api/handlers"
)

// HandleGetProfile serves GET /users/{uid}
func (h *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	u, err := h.service.GetUser(r.Context(), chi.URLParam(r, "uid"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, u)
}
