package posts

import (
	"context"
	"fmt"
	"strings"

	"Lagoon/internal/core/pagination"
)

type postService struct {
	repo Repository
}

// NewPostService creates a new post service
func NewPostService(repo Repository) Service {
	return &postService{repo: repo}
}

// CreatePost creates a new post owned by userID
func (s *postService) CreatePost(ctx context.Context, userID string, req CreatePostRequest) (*Post, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("user ID is required")
	}

	if req.Text == "" && req.ImageURL == "" {
		return nil, NewValidationError("text", "post must include text or imageUrl")
	}

	post := &Post{
		UserID:   userID,
		Text:     req.Text,
		ImageURL: req.ImageURL,
		Likes:    []string{},
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return created, nil
}

// GetPost retrieves a single post by ID
func (s *postService) GetPost(ctx context.Context, id string) (*Post, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrNotFound
	}

	return s.repo.GetByID(ctx, id)
}

// ListPosts returns one page of posts ordered by creation time descending
func (s *postService) ListPosts(ctx context.Context, limit int, cursor string) (*Page, error) {
	items, err := s.repo.List(ctx, limit, cursor)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	page := &Page{Items: items}
	if len(items) > 0 {
		page.NextCursor = pagination.NextCursor(items[len(items)-1].ID, len(items))
	}
	if page.Items == nil {
		page.Items = []*Post{}
	}

	return page, nil
}

// UpdatePost merges the provided fields into the post after verifying ownership
func (s *postService) UpdatePost(ctx context.Context, id, userID string, req UpdatePostRequest) (*Post, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := requireOwner(post, userID); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, req)
}

// DeletePost removes the post after verifying ownership
func (s *postService) DeletePost(ctx context.Context, id, userID string) error {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := requireOwner(post, userID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

// ToggleLike flips userID's membership in the post's like set
func (s *postService) ToggleLike(ctx context.Context, id, userID string) (*Post, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("user ID is required")
	}

	return s.repo.ToggleLike(ctx, id, userID)
}

// requireOwner is the ownership capability check applied uniformly to
// owner-only post mutations
func requireOwner(post *Post, userID string) error {
	if post.UserID != userID {
		return ErrForbidden
	}
	return nil
}
