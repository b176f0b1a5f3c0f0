package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Lagoon/internal/api/handlers"
	"Lagoon/internal/core/users"
)

// HandleSearch serves GET /users/search?q=...&field=...
// field is optional and defaults to email.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var field users.SearchField
	if raw := r.URL.Query().Get("field"); raw != "" {
		parsed, err := users.ParseSearchField(raw)
		if err != nil {
			handleServiceError(w, err)
			return
		}
		field = parsed
	}

	matches, err := h.service.SearchUsers(r.Context(), query, field)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, matches)
}

// HandleSearchByUsername serves GET /users/search/{username}, the older
// path-parameter form. It searches the username field first.
func (h *Handler) HandleSearchByUsername(w http.ResponseWriter, r *http.Request) {
	matches, err := h.service.SearchUsers(r.Context(), chi.URLParam(r, "username"), users.FieldUsername)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, matches)
}
