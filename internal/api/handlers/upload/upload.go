package upload

import (
	"errors"
	"log"
	"net/http"

	"Lagoon/internal/api/handlers"
	"Lagoon/internal/core/uploads"
)

// Handler serves image uploads.
type Handler struct {
	service uploads.Service
}

func NewHandler(service uploads.Service) *Handler {
	return &Handler{service: service}
}

// HandleUpload serves POST /upload
// Expects a multipart form with a single "image" file part. Responds with
// the public URL of the stored image.
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, uploads.MaxImageSize+(1<<20))

	file, header, err := r.FormFile("image")
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "No image file uploaded")
		return
	}
	defer file.Close()

	stored, err := h.service.UploadImage(r.Context(), header.Header.Get("Content-Type"), header.Size, file)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Image uploaded successfully",
		"url":     stored.ImageURL,
	})
}

func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, uploads.ErrMissingFile):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "No image file uploaded")
	case errors.Is(err, uploads.ErrTooLarge):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Image exceeds maximum size")
	case errors.Is(err, uploads.ErrUnsupportedType):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Unsupported image type")
	default:
		log.Printf("upload handler: storage error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Image upload failed: "+err.Error())
	}
}
