package user

import (
	"net/http"

	"Lagoon/internal/api/handlers"
	"Lagoon/internal/core/pagination"
)

// HandleList serves GET /users
// Supports limit (default 20, max 100) and cursor query parameters.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit := pagination.ClampLimit(r.URL.Query().Get("limit"), pagination.DefaultLimit, pagination.MaxUsersLimit)
	cursor := r.URL.Query().Get("cursor")

	page, err := h.service.ListUsers(r.Context(), limit, cursor)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, page)
}
