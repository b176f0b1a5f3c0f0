package uploads

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

type uploadService struct {
	store BlobStore
	repo  Repository
}

// NewUploadService creates a new upload service
func NewUploadService(store BlobStore, repo Repository) Service {
	return &uploadService{store: store, repo: repo}
}

// UploadImage validates the image, writes it to blob storage, and records
// the resulting URL
func (s *uploadService) UploadImage(ctx context.Context, contentType string, size int64, body io.Reader) (*Upload, error) {
	if body == nil {
		return nil, ErrMissingFile
	}
	if size > MaxImageSize {
		return nil, ErrTooLarge
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrUnsupportedType
	}

	url, err := s.store.Put(ctx, randomStorageKey(), contentType, body)
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	record, err := s.repo.Create(ctx, &Upload{ImageURL: url})
	if err != nil {
		return nil, fmt.Errorf("failed to record upload: %w", err)
	}

	return record, nil
}

// randomStorageKey builds a date-sharded object key so buckets stay
// browsable and keys never collide
func randomStorageKey() string {
	d := time.Now().UTC()
	return fmt.Sprintf("uploads/%d/%02d/%02d/%s", d.Year(), d.Month(), d.Day(), uuid.New())
}
