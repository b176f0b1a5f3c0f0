package post

import (
	"encoding/json"
	"net/http"

	"Lagoon/internal/api/handlers"
	"Lagoon/internal/api/middleware"
	"Lagoon/internal/core/posts"
)

// HandleCreate serves POST /posts
// Requires authentication; the post must carry text or an image URL.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "Unauthorized", "Authentication required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var req posts.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	created, err := h.service.CreatePost(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, created)
}
