package post

import (
	"net/http"

	"Lagoon/internal/api/handlers"
	"Lagoon/internal/core/pagination"
)

// HandleList serves GET /posts?limit=20&cursor=<postId>
// Public: returns one page of posts, newest first, plus a continuation
// cursor. A short or empty page signals the end of the list.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := pagination.ClampLimit(query.Get("limit"), pagination.DefaultLimit, pagination.MaxPostsLimit)

	page, err := h.service.ListPosts(r.Context(), limit, query.Get("cursor"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, page)
}
