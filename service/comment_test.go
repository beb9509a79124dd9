package service

import (
	"context"
	"net/http"
	"testing"

	"playtube/dao"
	"playtube/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentService(t *testing.T) (*CommentService, *testDeps) {
	db := newTestDB(t)
	return &CommentService{
		CommentDAO: dao.NewCommentDAO(db),
		VideoDAO:   dao.NewVideoDAO(db),
	}, &testDeps{db: db}
}

func TestCommentService_CreateAndList(t *testing.T) {
	svc, deps := newCommentService(t)
	ctx := context.Background()

	owner := seedUser(t, deps.db, "alice", "s3cret!")
	video := seedVideo(t, deps.db, owner.ID, "clip", true)

	_, err := svc.Create(ctx, owner.ID, 123456, "first")
	assert.True(t, isBizError(err, http.StatusNotFound))

	comment, err := svc.Create(ctx, owner.ID, video.ID, "first")
	require.NoError(t, err)
	assert.Equal(t, "first", comment.Content)

	result, err := svc.ListByVideo(ctx, video.ID, &types.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Meta.TotalCount)
	require.Len(t, result.Comments, 1)
	assert.Equal(t, "alice", result.Comments[0].Owner.Username)
}

func TestCommentService_ListPagination(t *testing.T) {
	svc, deps := newCommentService(t)
	ctx := context.Background()

	owner := seedUser(t, deps.db, "alice", "s3cret!")
	video := seedVideo(t, deps.db, owner.ID, "clip", true)

	for i := 0; i < 5; i++ {
		_, err := svc.Create(ctx, owner.ID, video.ID, "comment")
		require.NoError(t, err)
	}

	seen := make(map[int64]struct{})
	for page := 1; page <= 3; page++ {
		result, err := svc.ListByVideo(ctx, video.ID, &types.PageRequest{Page: page, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(5), result.Meta.TotalCount)

		for _, c := range result.Comments {
			_, dup := seen[c.ID]
			assert.False(t, dup, "comment %d returned twice", c.ID)
			seen[c.ID] = struct{}{}
		}
	}
	assert.Len(t, seen, 5)
}

func TestCommentService_UpdateDelete_OwnerOnly(t *testing.T) {
	svc, deps := newCommentService(t)
	ctx := context.Background()

	owner := seedUser(t, deps.db, "alice", "s3cret!")
	stranger := seedUser(t, deps.db, "bob", "s3cret!")
	video := seedVideo(t, deps.db, owner.ID, "clip", true)

	comment, err := svc.Create(ctx, owner.ID, video.ID, "original")
	require.NoError(t, err)

	_, err = svc.Update(ctx, stranger.ID, comment.ID, "hijacked")
	assert.True(t, isBizError(err, http.StatusForbidden))

	err = svc.Delete(ctx, stranger.ID, comment.ID)
	assert.True(t, isBizError(err, http.StatusForbidden))

	updated, err := svc.Update(ctx, owner.ID, comment.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	require.NoError(t, svc.Delete(ctx, owner.ID, comment.ID))

	err = svc.Delete(ctx, owner.ID, comment.ID)
	assert.True(t, isBizError(err, http.StatusNotFound))
}
