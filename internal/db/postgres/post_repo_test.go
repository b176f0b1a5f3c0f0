package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Lagoon/internal/core/posts"
)

// setupTestDB connects to the test database and runs migrations.
// Tests are skipped when TEST_DATABASE_URL is not set.
func setupTestDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database tests")
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, db.Ping(), "Failed to ping test database")

	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(db, "../migrations"), "Failed to run migrations")

	return db
}

func cleanupPosts(t *testing.T, db *sql.DB, userID string) {
	_, err := db.Exec("DELETE FROM posts WHERE user_id = $1", userID)
	require.NoError(t, err)
}

func createTestPost(t *testing.T, repo posts.Repository, userID, text string) *posts.Post {
	post, err := repo.Create(context.Background(), &posts.Post{
		UserID: userID,
		Text:   text,
		Likes:  []string{},
	})
	require.NoError(t, err)
	return post
}

func TestPostRepo_PaginationCompleteness(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewPostRepository(db)
	ctx := context.Background()

	userID := "pagination-user"
	cleanupPosts(t, db, userID)
	defer cleanupPosts(t, db, userID)

	const total = 7
	created := map[string]bool{}
	for i := 0; i < total; i++ {
		p := createTestPost(t, repo, userID, fmt.Sprintf("post %d", i))
		created[p.ID] = true
		time.Sleep(5 * time.Millisecond) // distinct creation times
	}

	// Walk the collection in pages of 3, feeding each nextCursor back in
	seen := map[string]bool{}
	cursor := ""
	var lastCreatedAt time.Time
	for {
		page, err := repo.List(ctx, 3, cursor)
		require.NoError(t, err)
		if len(page) == 0 {
			break
		}
		for _, p := range page {
			if p.UserID != userID {
				continue
			}
			require.False(t, seen[p.ID], "duplicate post %s across pages", p.ID)
			seen[p.ID] = true
			if !lastCreatedAt.IsZero() {
				assert.False(t, p.CreatedAt.After(lastCreatedAt), "pages must be newest first")
			}
			lastCreatedAt = p.CreatedAt
		}
		if len(page) < 3 {
			break
		}
		cursor = page[len(page)-1].ID
	}

	for id := range created {
		assert.True(t, seen[id], "post %s missing from paginated walk", id)
	}
}

func TestPostRepo_StaleCursorStartsFromTop(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewPostRepository(db)
	ctx := context.Background()

	userID := "stale-cursor-user"
	cleanupPosts(t, db, userID)
	defer cleanupPosts(t, db, userID)
	createTestPost(t, repo, userID, "only post")

	fromTop, err := repo.List(ctx, 50, "")
	require.NoError(t, err)

	withStale, err := repo.List(ctx, 50, "no-such-post-id")
	require.NoError(t, err)

	assert.Equal(t, len(fromTop), len(withStale))
	if len(fromTop) > 0 && len(withStale) > 0 {
		assert.Equal(t, fromTop[0].ID, withStale[0].ID)
	}
}

func TestPostRepo_ToggleLike(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewPostRepository(db)
	ctx := context.Background()

	userID := "toggle-user"
	cleanupPosts(t, db, userID)
	defer cleanupPosts(t, db, userID)
	post := createTestPost(t, repo, userID, "like me")

	liked, err := repo.ToggleLike(ctx, post.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, liked.Likes)
	assert.Equal(t, 1, liked.LikeCount)
	assert.True(t, liked.UpdatedAt.After(post.UpdatedAt) || liked.UpdatedAt.Equal(post.UpdatedAt))

	// Second toggle restores the original membership
	unliked, err := repo.ToggleLike(ctx, post.ID, "u1")
	require.NoError(t, err)
	assert.Empty(t, unliked.Likes)
	assert.Equal(t, 0, unliked.LikeCount)

	_, err = repo.ToggleLike(ctx, "missing", "u1")
	assert.ErrorIs(t, err, posts.ErrNotFound)
}

func TestPostRepo_ConcurrentTogglesLoseNoLikes(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewPostRepository(db)
	ctx := context.Background()

	userID := "concurrent-toggle-user"
	cleanupPosts(t, db, userID)
	defer cleanupPosts(t, db, userID)
	post := createTestPost(t, repo, userID, "pile on")

	// N distinct users toggle the same post at once. The row lock must
	// serialize the read-modify-writes so every like lands.
	const likers = 20
	var wg sync.WaitGroup
	errs := make(chan error, likers)
	for i := 0; i < likers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if _, err := repo.ToggleLike(ctx, post.ID, fmt.Sprintf("liker-%d", n)); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	final, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, likers, final.LikeCount)
	require.Len(t, final.Likes, likers)

	seen := map[string]bool{}
	for _, id := range final.Likes {
		seen[id] = true
	}
	for i := 0; i < likers; i++ {
		assert.True(t, seen[fmt.Sprintf("liker-%d", i)], "like from liker-%d was lost", i)
	}
}

func TestPostRepo_MergeWriteUpdate(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewPostRepository(db)
	ctx := context.Background()

	userID := "merge-user"
	cleanupPosts(t, db, userID)
	defer cleanupPosts(t, db, userID)
	post := createTestPost(t, repo, userID, "original")

	// Only text is provided; imageUrl must be left untouched
	text := "edited"
	updated, err := repo.Update(ctx, post.ID, posts.UpdatePostRequest{Text: &text})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Text)
	assert.Equal(t, post.ImageURL, updated.ImageURL)

	_, err = repo.Update(ctx, "missing", posts.UpdatePostRequest{Text: &text})
	assert.ErrorIs(t, err, posts.ErrNotFound)
}

func TestPostRepo_Delete(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewPostRepository(db)
	ctx := context.Background()

	userID := "delete-user"
	cleanupPosts(t, db, userID)
	post := createTestPost(t, repo, userID, "doomed")

	require.NoError(t, repo.Delete(ctx, post.ID))

	_, err := repo.GetByID(ctx, post.ID)
	assert.ErrorIs(t, err, posts.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, post.ID), posts.ErrNotFound)
}
