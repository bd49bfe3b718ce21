package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/averyk/miniblog/internal/common"
	"github.com/averyk/miniblog/internal/store"
	"github.com/averyk/miniblog/models"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive for the test.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	st, err := store.New(db)
	require.NoError(t, err)
	return st
}

func createUser(t *testing.T, st *store.Store, username string) *models.User {
	t.Helper()
	user, err := st.CreateUser(context.Background(), username)
	require.NoError(t, err)
	return user
}

func createPost(t *testing.T, st *store.Store, owner *models.User, title string) *models.Post {
	t.Helper()
	post := &models.Post{
		OwnerID:       owner.ID,
		OwnerUsername: owner.Username,
		Title:         title,
		Content:       "some content",
	}
	require.NoError(t, st.CreatePost(context.Background(), post))
	return post
}

func TestCreateUser(t *testing.T) {
	st := newTestStore(t)

	user := createUser(t, st, "  bob  ")
	assert.Equal(t, "bob", user.Username)
	assert.NotEmpty(t, user.ID)
}

func TestCreateUserDuplicate(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	createUser(t, st, "bob")

	// The trimmed username collides regardless of surrounding whitespace.
	_, err := st.CreateUser(ctx, "bob")
	assert.ErrorIs(t, err, common.ErrUsernameTaken)
	_, err = st.CreateUser(ctx, " bob ")
	assert.ErrorIs(t, err, common.ErrUsernameTaken)

	// Different case is a different user.
	_, err = st.CreateUser(ctx, "Bob")
	assert.NoError(t, err)
}

func TestCreateUserEmpty(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.CreateUser(ctx, "")
	assert.ErrorIs(t, err, common.ErrValidation)
	_, err = st.CreateUser(ctx, "   ")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestUserByUsername(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	created := createUser(t, st, "alice")

	found, err := st.UserByUsername(ctx, " alice ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = st.UserByUsername(ctx, "Alice")
	assert.ErrorIs(t, err, common.ErrUserNotFound)
	_, err = st.UserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestCreatePostValidation(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	alice := createUser(t, st, "alice")

	base := func() *models.Post {
		return &models.Post{OwnerID: alice.ID, OwnerUsername: alice.Username, Title: "t", Content: "c"}
	}

	p := base()
	p.Title = "   "
	assert.ErrorIs(t, st.CreatePost(ctx, p), common.ErrValidation)

	p = base()
	p.Content = ""
	assert.ErrorIs(t, st.CreatePost(ctx, p), common.ErrValidation)

	p = base()
	p.Image = []byte{1}
	assert.ErrorIs(t, st.CreatePost(ctx, p), common.ErrValidation)

	p = base()
	p.ImageExt = "png"
	assert.ErrorIs(t, st.CreatePost(ctx, p), common.ErrValidation)

	p = base()
	p.Image = []byte{1}
	p.ImageExt = "png"
	assert.NoError(t, st.CreatePost(ctx, p))
	assert.NotEmpty(t, p.ID)
}

func TestAllPostsNewestFirst(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	alice := createUser(t, st, "alice")

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		post := &models.Post{
			OwnerID:       alice.ID,
			OwnerUsername: alice.Username,
			Title:         title,
			Content:       "c",
			CreatedAt:     base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, st.CreatePost(ctx, post))
	}

	posts, err := st.AllPostsNewestFirst(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "third", posts[0].Title)
	assert.Equal(t, "second", posts[1].Title)
	assert.Equal(t, "first", posts[2].Title)
}

func TestOwnedPost(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	alice := createUser(t, st, "alice")
	bob := createUser(t, st, "bob")
	post := createPost(t, st, alice, "alice's post")

	found, err := st.OwnedPost(ctx, post.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, found.ID)
	assert.Nil(t, found.UpdatedAt)

	// A foreign post and a nonexistent post are indistinguishable.
	_, foreignErr := st.OwnedPost(ctx, post.ID, bob.ID)
	_, missingErr := st.OwnedPost(ctx, uuid.NewString(), bob.ID)
	assert.ErrorIs(t, foreignErr, common.ErrNotFound)
	assert.ErrorIs(t, missingErr, common.ErrNotFound)
	assert.Equal(t, foreignErr, missingErr)
}

func TestUpdateOwnedPost(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	alice := createUser(t, st, "alice")

	post := &models.Post{
		OwnerID:       alice.ID,
		OwnerUsername: alice.Username,
		Title:         "before",
		Content:       "old",
		Image:         []byte("imgdata"),
		ImageExt:      "png",
	}
	require.NoError(t, st.CreatePost(ctx, post))

	// A nil image keeps the stored one.
	require.NoError(t, st.UpdateOwnedPost(ctx, post.ID, alice.ID, " after ", "new", nil, ""))

	updated, err := st.OwnedPost(ctx, post.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Title)
	assert.Equal(t, "new", updated.Content)
	assert.Equal(t, []byte("imgdata"), updated.Image)
	assert.Equal(t, "png", updated.ImageExt)
	require.NotNil(t, updated.UpdatedAt)

	// Replacing the image swaps both payload and extension.
	require.NoError(t, st.UpdateOwnedPost(ctx, post.ID, alice.ID, "after", "new", []byte("other"), "gif"))
	updated, err = st.OwnedPost(ctx, post.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("other"), updated.Image)
	assert.Equal(t, "gif", updated.ImageExt)
}

func TestUpdateOwnedPostDeniedForNonOwner(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	alice := createUser(t, st, "alice")
	bob := createUser(t, st, "bob")
	post := createPost(t, st, alice, "original")

	err := st.UpdateOwnedPost(ctx, post.ID, bob.ID, "hijacked", "gotcha", nil, "")
	assert.ErrorIs(t, err, common.ErrNotFound)

	unchanged, err := st.OwnedPost(ctx, post.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", unchanged.Title)
	assert.Nil(t, unchanged.UpdatedAt)
}

func TestUpdateOwnedPostValidation(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	alice := createUser(t, st, "alice")
	post := createPost(t, st, alice, "original")

	err := st.UpdateOwnedPost(ctx, post.ID, alice.ID, "", "content", nil, "")
	assert.ErrorIs(t, err, common.ErrValidation)

	unchanged, err := st.OwnedPost(ctx, post.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", unchanged.Title)
}

func TestDeleteOwnedPost(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	alice := createUser(t, st, "alice")
	post := createPost(t, st, alice, "doomed")

	require.NoError(t, st.DeleteOwnedPost(ctx, post.ID, alice.ID))

	_, err := st.OwnedPost(ctx, post.ID, alice.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteOwnedPostDeniedForNonOwner(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	alice := createUser(t, st, "alice")
	bob := createUser(t, st, "bob")
	post := createPost(t, st, alice, "keeper")

	err := st.DeleteOwnedPost(ctx, post.ID, bob.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	// Nothing was mutated: the post is still in alice's listing.
	posts, err := st.AllPostsNewestFirst(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "keeper", posts[0].Title)
}
