package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"Lagoon/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

const postColumns = `id, user_id, text, image_url, likes, like_count, created_at, updated_at`

// Create inserts a new post with a store-assigned ID
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		INSERT INTO posts (id, user_id, text, image_url, likes, like_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at`

	post.ID = uuid.NewString()
	if post.Likes == nil {
		post.Likes = []string{}
	}
	post.LikeCount = len(post.Likes)

	err := r.db.QueryRowContext(
		ctx, query,
		post.ID, post.UserID, post.Text, post.ImageURL,
		pq.Array(post.Likes), post.LikeCount,
	).Scan(&post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	return post, nil
}

// GetByID retrieves a post by ID
func (r *postgresPostRepo) GetByID(ctx context.Context, id string) (*posts.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// List scans posts newest first. A non-empty cursorID is resolved with a
// point read; when the cursor row no longer exists the scan silently starts
// from the top, matching the paginator contract.
func (r *postgresPostRepo) List(ctx context.Context, limit int, cursorID string) ([]*posts.Post, error) {
	var (
		rows *sql.Rows
		err  error
	)

	cursorAt, cursorOK, err := r.resolveCursor(ctx, cursorID)
	if err != nil {
		return nil, err
	}

	if cursorOK {
		query := `
			SELECT ` + postColumns + `
			FROM posts
			WHERE (created_at, id) < ($1, $2)
			ORDER BY created_at DESC, id DESC
			LIMIT $3`
		rows, err = r.db.QueryContext(ctx, query, cursorAt, cursorID, limit)
	} else {
		query := `
			SELECT ` + postColumns + `
			FROM posts
			ORDER BY created_at DESC, id DESC
			LIMIT $1`
		rows, err = r.db.QueryContext(ctx, query, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer closeRows(rows)

	items := []*posts.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		items = append(items, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return items, nil
}

// resolveCursor point-reads the cursor row's creation time. A missing row
// reports ok=false rather than an error.
func (r *postgresPostRepo) resolveCursor(ctx context.Context, cursorID string) (time.Time, bool, error) {
	if cursorID == "" {
		return time.Time{}, false, nil
	}

	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, `SELECT created_at FROM posts WHERE id = $1`, cursorID).Scan(&createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to resolve cursor: %w", err)
	}

	return createdAt, true, nil
}

// Update merge-writes the non-nil fields plus updatedAt
func (r *postgresPostRepo) Update(ctx context.Context, id string, update posts.UpdatePostRequest) (*posts.Post, error) {
	query := `
		UPDATE posts
		SET text       = COALESCE($2, text),
		    image_url  = COALESCE($3, image_url),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + postColumns

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id, update.Text, update.ImageURL))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

// Delete removes the post
func (r *postgresPostRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return posts.ErrNotFound
	}

	return nil
}

// ToggleLike flips userID's membership in the like set. The row is locked
// for the duration of the read-modify-write so concurrent toggles serialize
// instead of clobbering each other.
func (r *postgresPostRepo) ToggleLike(ctx context.Context, id, userID string) (*posts.Post, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin toggle transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			log.Printf("WARN: failed to roll back toggle transaction: %v", err)
		}
	}()

	var likes []string
	err = tx.QueryRowContext(ctx, `SELECT likes FROM posts WHERE id = $1 FOR UPDATE`, id).
		Scan(pq.Array(&likes))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read likes: %w", err)
	}

	updated, _ := posts.FlipLike(likes, userID)

	query := `
		UPDATE posts
		SET likes      = $2,
		    like_count = $3,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + postColumns

	post, err := scanPost(tx.QueryRowContext(ctx, query, id, pq.Array(updated), len(updated)))
	if err != nil {
		return nil, fmt.Errorf("failed to write likes: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit toggle: %w", err)
	}

	return post, nil
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(row rowScanner) (*posts.Post, error) {
	var post posts.Post
	err := row.Scan(
		&post.ID, &post.UserID, &post.Text, &post.ImageURL,
		pq.Array(&post.Likes), &post.LikeCount,
		&post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if post.Likes == nil {
		post.Likes = []string{}
	}
	return &post, nil
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		log.Printf("WARN: failed to close rows: %v", err)
	}
}
