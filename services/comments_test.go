package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailyink/blog-backend/errs"
)

func TestAddCommentToMissingPost(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db.UserRepo())
	comments := NewCommentService(db.PostRepo(), db.CommentRepo())

	user := registerUser(t, auth, "Ada", "ada@example.com", "pw", nil)

	_, err := comments.Add(context.Background(), 123, user, "hello")
	assert.True(t, errs.IsNotFound(err))
}

func TestAddRejectsEmptyComment(t *testing.T) {
	db, posts, admin := newPostFixture(t)
	comments := NewCommentService(db.PostRepo(), db.CommentRepo())
	ctx := context.Background()

	post, err := posts.Create(ctx, fullPostInput("commented"), admin)
	require.NoError(t, err)

	_, err = comments.Add(ctx, post.ID, admin, "")
	var apiErr *errs.ApiErr
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "comment", apiErr.Field)
}

func TestCommentsKeepInsertionOrderAndSnapshotAuthor(t *testing.T) {
	db, posts, admin := newPostFixture(t)
	auth := NewAuthService(db.UserRepo())
	comments := NewCommentService(db.PostRepo(), db.CommentRepo())
	ctx := context.Background()

	commenter := registerUser(t, auth, "Ada", "ada@example.com", "pw", nil)

	post, err := posts.Create(ctx, fullPostInput("discussion"), admin)
	require.NoError(t, err)

	for _, body := range []string{"first", "second", "third"} {
		_, err := comments.Add(ctx, post.ID, commenter, body)
		require.NoError(t, err)
	}

	listed, err := comments.ListForPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, listed, 3)

	assert.Equal(t, "first", listed[0].Body)
	assert.Equal(t, "second", listed[1].Body)
	assert.Equal(t, "third", listed[2].Body)

	for _, c := range listed {
		assert.Equal(t, "Ada", c.Author)
		assert.Equal(t, commenter.UserID, c.AuthorID)
		assert.Equal(t, post.ID, c.PostID)
	}
}
