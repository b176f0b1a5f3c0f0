package user

import (
	"Lagoon/internal/core/users"
)

const maxBodySize = 1 << 20 // 1MB

// Handler serves user profile and search endpoints.
type Handler struct {
	service users.Service
}

func NewHandler(service users.Service) *Handler {
	return &Handler{service: service}
}
