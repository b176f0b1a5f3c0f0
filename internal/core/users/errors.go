package users

import "errors"

var (
	// ErrUserNotFound is returned when a user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrNoMatches is returned when a search yields zero results after
	// every fallback attempt
	ErrNoMatches = errors.New("no users found")

	// ErrQueryTooShort is returned when a search query is shorter than two
	// characters after trimming
	ErrQueryTooShort = errors.New("search query must be at least 2 characters")

	// ErrInvalidSearchField is returned for a field outside the searchable
	// whitelist
	ErrInvalidSearchField = errors.New("invalid search field")
)
