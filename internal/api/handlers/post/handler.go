package post

import (
	"Lagoon/internal/core/posts"
)

// maxBodySize caps post request bodies (1MB)
const maxBodySize = 1 << 20

// Handler serves the post HTTP surface
type Handler struct {
	service posts.Service
}

// NewHandler creates a new post handler
func NewHandler(service posts.Service) *Handler {
	return &Handler{service: service}
}
