package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Lagoon/internal/core/users"
)

func cleanupUsers(t *testing.T, db *sql.DB, uids ...string) {
	for _, uid := range uids {
		_, err := db.Exec("DELETE FROM users WHERE uid = $1", uid)
		require.NoError(t, err)
	}
}

func seedUser(t *testing.T, repo users.Repository, uid, username string) *users.User {
	user, err := repo.UpsertProfile(context.Background(), uid, users.UpdateProfileRequest{
		Username: &username,
	})
	require.NoError(t, err)
	return user
}

func setEmail(t *testing.T, db *sql.DB, uid, email string) {
	_, err := db.Exec("UPDATE users SET email = $2 WHERE uid = $1", uid, email)
	require.NoError(t, err)
}

func TestUserRepo_UpsertCreatesAndMerges(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewUserRepository(db)
	ctx := context.Background()

	uid := "upsert-uid"
	cleanupUsers(t, db, uid)
	defer cleanupUsers(t, db, uid)

	// First write creates the profile
	username := "sailor"
	created, err := repo.UpsertProfile(ctx, uid, users.UpdateProfileRequest{Username: &username})
	require.NoError(t, err)
	assert.Equal(t, "sailor", created.Username)

	// Partial merge leaves unspecified fields untouched
	bio := "hello"
	merged, err := repo.UpsertProfile(ctx, uid, users.UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "sailor", merged.Username)
	assert.Equal(t, "hello", merged.Bio)
	assert.True(t, merged.UpdatedAt.After(created.UpdatedAt) || merged.UpdatedAt.Equal(created.UpdatedAt))
	assert.Equal(t, created.CreatedAt.Unix(), merged.CreatedAt.Unix())
}

func TestUserRepo_GetByUID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewUserRepository(db)
	ctx := context.Background()

	uid := "get-uid"
	cleanupUsers(t, db, uid)
	defer cleanupUsers(t, db, uid)
	seedUser(t, repo, uid, "getme")

	user, err := repo.GetByUID(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "getme", user.Username)

	_, err = repo.GetByUID(ctx, "missing-uid")
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestUserRepo_SearchPrefixExactBound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewUserRepository(db)
	ctx := context.Background()

	uids := []string{"pfx-ann", "pfx-anna", "pfx-anne", "pfx-bob"}
	cleanupUsers(t, db, uids...)
	defer cleanupUsers(t, db, uids...)

	seedUser(t, repo, "pfx-ann", "ann")
	seedUser(t, repo, "pfx-anna", "anna")
	seedUser(t, repo, "pfx-anne", "anne")
	seedUser(t, repo, "pfx-bob", "bob")

	matches, err := repo.SearchPrefix(ctx, users.FieldUsername, "an")
	require.NoError(t, err)

	got := map[string]bool{}
	for _, u := range matches {
		got[u.Username] = true
	}
	assert.True(t, got["ann"])
	assert.True(t, got["anna"])
	assert.True(t, got["anne"])
	assert.False(t, got["bob"], "prefix scan must not match non-prefixed values")
}

func TestUserRepo_SearchPrefixByEmail(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewUserRepository(db)
	ctx := context.Background()

	uid := "email-uid"
	cleanupUsers(t, db, uid)
	defer cleanupUsers(t, db, uid)
	seedUser(t, repo, uid, "someone")
	setEmail(t, db, uid, "zq@x.com")

	matches, err := repo.SearchPrefix(ctx, users.FieldEmail, "zq")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, uid, matches[0].UID)
}

func TestUserRepo_ListCursor(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewUserRepository(db)
	ctx := context.Background()

	uids := []string{"list-a", "list-b", "list-c"}
	cleanupUsers(t, db, uids...)
	defer cleanupUsers(t, db, uids...)
	for _, uid := range uids {
		seedUser(t, repo, uid, "user-"+uid)
	}

	first, err := repo.List(ctx, 2, "")
	require.NoError(t, err)
	require.NotEmpty(t, first)

	next, err := repo.List(ctx, 2, first[len(first)-1].UID)
	require.NoError(t, err)
	for _, u := range next {
		assert.NotEqual(t, first[0].UID, u.UID, "cursor page must not repeat earlier items")
	}

	// Unresolvable cursor behaves like no cursor
	stale, err := repo.List(ctx, 2, "never-existed")
	require.NoError(t, err)
	require.NotEmpty(t, stale)
	assert.Equal(t, first[0].UID, stale[0].UID)
}
