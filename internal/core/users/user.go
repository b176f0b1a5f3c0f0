package users

import "time"

// User represents a profile document. UID is the caller identity assigned
// by the store and is stable for the lifetime of the account.
type User struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	UID       string    `json:"uid" db:"uid"`
	Username  string    `json:"username" db:"username"`
	Email     string    `json:"email" db:"email"`
	Bio       string    `json:"bio" db:"bio"`
	PhotoURL  string    `json:"photoUrl" db:"photo_url"`
}

// UpdateProfileRequest is a partial merge: nil fields are left untouched.
// The merge creates the profile document when it does not exist yet.
type UpdateProfileRequest struct {
	Username *string `json:"username,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	PhotoURL *string `json:"photoUrl,omitempty"`
}

// Page is one page of a creation-time-descending user scan plus the
// continuation cursor.
type Page struct {
	Items      []*User `json:"items"`
	NextCursor *string `json:"nextCursor"`
}

// SearchField names a profile field searchable by prefix range scan
type SearchField string

const (
	// FieldUsername searches the username field
	FieldUsername SearchField = "username"

	// FieldEmail searches the email field; email is the assumed-universal
	// field and serves as the fallback for every other attempt
	FieldEmail SearchField = "email"
)

// ParseSearchField validates a raw field parameter. Only whitelisted fields
// are accepted; the field name is interpolated into store queries.
func ParseSearchField(raw string) (SearchField, error) {
	switch SearchField(raw) {
	case FieldUsername:
		return FieldUsername, nil
	case FieldEmail:
		return FieldEmail, nil
	default:
		return "", ErrInvalidSearchField
	}
}
