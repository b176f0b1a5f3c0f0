package post

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Lagoon/internal/api/handlers"
	"Lagoon/internal/api/middleware"
	"Lagoon/internal/core/posts"
)

// HandleUpdate serves PUT /posts/{id}
// Owner only; absent fields are left untouched (merge-write).
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "Unauthorized", "Authentication required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var req posts.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	updated, err := h.service.UpdatePost(r.Context(), chi.URLParam(r, "id"), userID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, updated)
}
