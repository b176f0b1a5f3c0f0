package user

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Lagoon/internal/api/handlers"
	"Lagoon/internal/core/users"
)

// HandleUpdateProfile serves PUT /users/{uid}
// Merge-writes the provided fields into the profile, creating it if it
// does not exist yet.
func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var req users.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	updated, err := h.service.UpdateProfile(r.Context(), chi.URLParam(r, "uid"), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, updated)
}
