package posts

import "context"

// Service defines the business logic interface for posts
type Service interface {
	// CreatePost validates and stores a new post owned by userID.
	// Either text or imageUrl must be present.
	CreatePost(ctx context.Context, userID string, req CreatePostRequest) (*Post, error)

	// GetPost retrieves a single post by ID
	GetPost(ctx context.Context, id string) (*Post, error)

	// ListPosts returns one page of posts, newest first, starting after the
	// post named by cursor (or from the top when cursor is empty or stale)
	ListPosts(ctx context.Context, limit int, cursor string) (*Page, error)

	// UpdatePost merges the provided fields into the post. Owner only.
	UpdatePost(ctx context.Context, id, userID string, req UpdatePostRequest) (*Post, error)

	// DeletePost removes the post. Owner only.
	DeletePost(ctx context.Context, id, userID string) error

	// ToggleLike flips userID's membership in the post's like set and
	// returns the updated post
	ToggleLike(ctx context.Context, id, userID string) (*Post, error)
}

// Repository defines the data access interface for posts.
// The store assigns opaque IDs and supports point get, creation-time-ordered
// scans with start-after, and partial merge-writes.
type Repository interface {
	// Create inserts a new post and returns it with its assigned ID and
	// timestamps populated
	Create(ctx context.Context, post *Post) (*Post, error)

	// GetByID retrieves a post by ID, or ErrNotFound
	GetByID(ctx context.Context, id string) (*Post, error)

	// List scans posts newest first, starting strictly after the post named
	// by cursorID. An empty or unresolvable cursorID starts from the top.
	List(ctx context.Context, limit int, cursorID string) ([]*Post, error)

	// Update merge-writes the non-nil fields plus updatedAt and returns the
	// updated post
	Update(ctx context.Context, id string, update UpdatePostRequest) (*Post, error)

	// Delete removes the post, or ErrNotFound
	Delete(ctx context.Context, id string) error

	// ToggleLike flips userID's like membership inside a single store
	// transaction so concurrent toggles cannot lose updates
	ToggleLike(ctx context.Context, id, userID string) (*Post, error)
}
