package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"Lagoon/internal/core/uploads"
)

type postgresUploadRepo struct {
	db *sql.DB
}

// NewUploadRepository creates a new PostgreSQL upload repository
func NewUploadRepository(db *sql.DB) uploads.Repository {
	return &postgresUploadRepo{db: db}
}

// Create inserts an upload record with a store-assigned ID
func (r *postgresUploadRepo) Create(ctx context.Context, upload *uploads.Upload) (*uploads.Upload, error) {
	query := `
		INSERT INTO uploads (id, image_url, created_at)
		VALUES ($1, $2, NOW())
		RETURNING created_at`

	upload.ID = uuid.NewString()
	if err := r.db.QueryRowContext(ctx, query, upload.ID, upload.ImageURL).Scan(&upload.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to insert upload: %w", err)
	}

	return upload, nil
}
