package users

import (
	"context"
	"fmt"
	"strings"

	"Lagoon/internal/core/pagination"
)

type userService struct {
	repo Repository
}

// NewUserService creates a new user service
func NewUserService(repo Repository) Service {
	return &userService{repo: repo}
}

// ListUsers returns one page of users ordered by creation time descending
func (s *userService) ListUsers(ctx context.Context, limit int, cursor string) (*Page, error) {
	items, err := s.repo.List(ctx, limit, cursor)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	page := &Page{Items: items}
	if len(items) > 0 {
		page.NextCursor = pagination.NextCursor(items[len(items)-1].UID, len(items))
	}
	if page.Items == nil {
		page.Items = []*User{}
	}

	return page, nil
}

// GetUser retrieves a profile by UID
func (s *userService) GetUser(ctx context.Context, uid string) (*User, error) {
	if strings.TrimSpace(uid) == "" {
		return nil, ErrUserNotFound
	}

	return s.repo.GetByUID(ctx, uid)
}

// UpdateProfile merges the non-nil fields into the profile, creating it when
// absent. No ownership check is applied here: any caller may update any
// profile. Whether this should stay unrestricted is an open question
// tracked in DESIGN.md.
func (s *userService) UpdateProfile(ctx context.Context, uid string, req UpdateProfileRequest) (*User, error) {
	if strings.TrimSpace(uid) == "" {
		return nil, fmt.Errorf("uid is required")
	}

	return s.repo.UpsertProfile(ctx, uid, req)
}

// searchAttempt is one step of the fallback chain: a field to range-scan
// with the query
type searchAttempt struct {
	field SearchField
	query string
}

// SearchUsers prefix-matches query against field. The fallback policy is an
// ordered list of attempts evaluated until the first non-empty result:
// the requested field, then email (unless email was already requested).
func (s *userService) SearchUsers(ctx context.Context, query string, field SearchField) ([]*User, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return nil, ErrQueryTooShort
	}

	if field == "" {
		field = FieldEmail
	}

	attempts := []searchAttempt{{field: field, query: query}}
	if field != FieldEmail {
		attempts = append(attempts, searchAttempt{field: FieldEmail, query: query})
	}

	for _, attempt := range attempts {
		matches, err := s.repo.SearchPrefix(ctx, attempt.field, attempt.query)
		if err != nil {
			return nil, fmt.Errorf("failed to search users by %s: %w", attempt.field, err)
		}
		if len(matches) > 0 {
			return matches, nil
		}
	}

	return nil, ErrNoMatches
}
