package posts

import "time"

// Post represents a feed post document.
// Likes is the set of user IDs that currently like the post; it is persisted
// as an array and LikeCount always equals its length.
type Post struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	Text      string    `json:"text" db:"text"`
	ImageURL  string    `json:"imageUrl" db:"image_url"`
	Likes     []string  `json:"likes" db:"likes"`
	LikeCount int       `json:"likeCount" db:"like_count"`
}

// CreatePostRequest carries the caller-supplied fields for a new post.
// Either Text or ImageURL must be non-empty.
type CreatePostRequest struct {
	Text     string `json:"text"`
	ImageURL string `json:"imageUrl"`
}

// UpdatePostRequest is a partial update: nil fields are left untouched
// (merge-write semantics).
type UpdatePostRequest struct {
	Text     *string `json:"text,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

// Page is one page of a creation-time-descending scan plus the
// continuation cursor (ID of the last item, nil for an empty page).
type Page struct {
	Items      []*Post `json:"items"`
	NextCursor *string `json:"nextCursor"`
}

// FlipLike toggles membership of userID in the like set. Returns the new
// set and whether the user had already liked (true means the like was
// removed). Order of the remaining entries is preserved.
func FlipLike(likes []string, userID string) ([]string, bool) {
	for i, id := range likes {
		if id == userID {
			updated := make([]string, 0, len(likes)-1)
			updated = append(updated, likes[:i]...)
			updated = append(updated, likes[i+1:]...)
			return updated, true
		}
	}
	return append(append(make([]string, 0, len(likes)+1), likes...), userID), false
}
