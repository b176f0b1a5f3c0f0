package users

import "context"

// Service defines the business logic interface for users
type Service interface {
	// ListUsers returns one page of users, newest first, starting after the
	// user named by cursor (or from the top when cursor is empty or stale)
	ListUsers(ctx context.Context, limit int, cursor string) (*Page, error)

	// GetUser retrieves a profile by UID, or ErrUserNotFound
	GetUser(ctx context.Context, uid string) (*User, error)

	// UpdateProfile merges the non-nil fields into the profile, creating it
	// when absent. Ownership is not enforced on this operation.
	UpdateProfile(ctx context.Context, uid string, req UpdateProfileRequest) (*User, error)

	// SearchUsers prefix-matches query against field, falling back to email
	// when the requested field yields nothing. Zero matches after the
	// fallback chain is ErrNoMatches.
	SearchUsers(ctx context.Context, query string, field SearchField) ([]*User, error)
}

// Repository defines the data access interface for users
type Repository interface {
	// GetByUID retrieves a user by UID, or ErrUserNotFound
	GetByUID(ctx context.Context, uid string) (*User, error)

	// List scans users newest first, starting strictly after the user named
	// by cursorUID. An empty or unresolvable cursorUID starts from the top.
	List(ctx context.Context, limit int, cursorUID string) ([]*User, error)

	// UpsertProfile merge-writes the non-nil fields plus updatedAt,
	// inserting the row when it does not exist, and returns the result
	UpsertProfile(ctx context.Context, uid string, update UpdateProfileRequest) (*User, error)

	// SearchPrefix returns every user whose field value starts with query,
	// realized as an ordered range scan bounded by a maximal sentinel
	// code point. Matching is byte-wise: true string prefixes only.
	SearchPrefix(ctx context.Context, field SearchField, query string) ([]*User, error)
}
