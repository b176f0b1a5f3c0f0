package uploads

import (
	"context"
	"errors"
	"io"
	"time"
)

// MaxImageSize is the largest accepted upload (10 MB)
const MaxImageSize = 10 << 20

var (
	// ErrMissingFile is returned when the request carries no image file
	ErrMissingFile = errors.New("image file is required")

	// ErrTooLarge is returned when the image exceeds MaxImageSize
	ErrTooLarge = errors.New("image exceeds maximum size")

	// ErrUnsupportedType is returned for non-image content types
	ErrUnsupportedType = errors.New("unsupported image type")
)

// Upload records a stored image: the public URL plus when it was stored
type Upload struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	ID        string    `json:"id" db:"id"`
	ImageURL  string    `json:"imageUrl" db:"image_url"`
}

// Service stores image blobs and records their URLs
type Service interface {
	// UploadImage validates the image, writes it to blob storage, records
	// the resulting URL, and returns the record
	UploadImage(ctx context.Context, contentType string, size int64, body io.Reader) (*Upload, error)
}

// Repository persists upload records
type Repository interface {
	// Create inserts an upload record and returns it with ID and timestamp
	// populated
	Create(ctx context.Context, upload *Upload) (*Upload, error)
}

// BlobStore writes image bytes to durable storage and returns a public URL
type BlobStore interface {
	// Put stores body under key with the given content type and returns the
	// public URL of the stored object
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}
