package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"Lagoon/internal/core/users"
)

// prefixSentinel bounds a prefix range scan: every string with the queried
// prefix sorts between query and query+sentinel under byte-wise collation
const prefixSentinel = ""

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.Repository {
	return &postgresUserRepo{db: db}
}

const userColumns = `uid, username, email, bio, photo_url, created_at, updated_at`

// GetByUID retrieves a user by UID
func (r *postgresUserRepo) GetByUID(ctx context.Context, uid string) (*users.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE uid = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, uid))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// List scans users newest first, starting strictly after the cursor row.
// An unresolvable cursor degrades to a scan from the top.
func (r *postgresUserRepo) List(ctx context.Context, limit int, cursorUID string) ([]*users.User, error) {
	var (
		rows *sql.Rows
		err  error
	)

	cursorAt, cursorOK, err := r.resolveCursor(ctx, cursorUID)
	if err != nil {
		return nil, err
	}

	if cursorOK {
		query := `
			SELECT ` + userColumns + `
			FROM users
			WHERE (created_at, uid) < ($1, $2)
			ORDER BY created_at DESC, uid DESC
			LIMIT $3`
		rows, err = r.db.QueryContext(ctx, query, cursorAt, cursorUID, limit)
	} else {
		query := `
			SELECT ` + userColumns + `
			FROM users
			ORDER BY created_at DESC, uid DESC
			LIMIT $1`
		rows, err = r.db.QueryContext(ctx, query, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer closeRows(rows)

	items := []*users.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		items = append(items, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return items, nil
}

func (r *postgresUserRepo) resolveCursor(ctx context.Context, cursorUID string) (time.Time, bool, error) {
	if cursorUID == "" {
		return time.Time{}, false, nil
	}

	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, `SELECT created_at FROM users WHERE uid = $1`, cursorUID).Scan(&createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to resolve cursor: %w", err)
	}

	return createdAt, true, nil
}

// UpsertProfile merge-writes the non-nil fields, creating the profile row
// when it does not exist yet
func (r *postgresUserRepo) UpsertProfile(ctx context.Context, uid string, update users.UpdateProfileRequest) (*users.User, error) {
	query := `
		INSERT INTO users (uid, username, email, bio, photo_url, created_at, updated_at)
		VALUES ($1, COALESCE($2, ''), '', COALESCE($3, ''), COALESCE($4, ''), NOW(), NOW())
		ON CONFLICT (uid) DO UPDATE SET
			username   = COALESCE($2, users.username),
			bio        = COALESCE($3, users.bio),
			photo_url  = COALESCE($4, users.photo_url),
			updated_at = NOW()
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRowContext(ctx, query, uid, update.Username, update.Bio, update.PhotoURL))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}

	return user, nil
}

// SearchPrefix returns every user whose field value starts with query,
// using an ordered range scan bounded by the sentinel. field is a
// whitelisted enum, never raw caller input.
func (r *postgresUserRepo) SearchPrefix(ctx context.Context, field users.SearchField, query string) ([]*users.User, error) {
	column, err := searchColumn(field)
	if err != nil {
		return nil, err
	}

	stmt := fmt.Sprintf(`
		SELECT `+userColumns+`
		FROM users
		WHERE %s >= $1 AND %s <= $2
		ORDER BY %s`, column, column, column)

	rows, err := r.db.QueryContext(ctx, stmt, query, query+prefixSentinel)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	defer closeRows(rows)

	matches := []*users.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		matches = append(matches, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating search results: %w", err)
	}

	return matches, nil
}

func searchColumn(field users.SearchField) (string, error) {
	switch field {
	case users.FieldUsername:
		return "username", nil
	case users.FieldEmail:
		return "email", nil
	default:
		return "", users.ErrInvalidSearchField
	}
}

func scanUser(row rowScanner) (*users.User, error) {
	var user users.User
	err := row.Scan(
		&user.UID, &user.Username, &user.Email, &user.Bio, &user.PhotoURL,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
