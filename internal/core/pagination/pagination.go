// Package pagination implements the cursor protocol shared by every
// collection ordered by creation time: limit clamping and continuation
// cursors. A cursor is the ID of the last document of the previous page;
// resolving it against the store is the repository's job.
package pagination

import "strconv"

const (
	// DefaultLimit is used when the limit parameter is missing or not a number
	DefaultLimit = 20

	// MaxPostsLimit is the per-page cap for post collections
	MaxPostsLimit = 50

	// MaxUsersLimit is the per-page cap for user collections
	MaxUsersLimit = 100
)

// ClampLimit parses a raw limit parameter and caps it at max.
// Missing, non-numeric, or non-positive input falls back to def.
func ClampLimit(raw string, def, max int) int {
	limit := def
	if raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > max {
		limit = max
	}
	return limit
}

// NextCursor returns the continuation cursor for a page: the ID of the last
// item, or nil for an empty page. The cursor is returned even when the page
// is shorter than the requested limit; callers detect the end of the list
// by receiving a short or empty page.
func NextCursor(lastID string, pageLen int) *string {
	if pageLen == 0 {
		return nil
	}
	return &lastID
}
