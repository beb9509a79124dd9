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

func newPlaylistService(t *testing.T) (*PlaylistService, *testDeps) {
	db := newTestDB(t)
	return &PlaylistService{
		PlaylistDAO: dao.NewPlaylistDAO(db),
		VideoDAO:    dao.NewVideoDAO(db),
		UsersDAO:    dao.NewUsers(db),
	}, &testDeps{db: db}
}

func TestPlaylistService_Lifecycle(t *testing.T) {
	svc, deps := newPlaylistService(t)
	ctx := context.Background()

	owner := seedUser(t, deps.db, "alice", "s3cret!")
	video := seedVideo(t, deps.db, owner.ID, "clip", true)

	playlist, err := svc.Create(ctx, owner.ID, &types.CreatePlaylistRequest{
		Name:        "favorites",
		Description: "my picks",
	})
	require.NoError(t, err)

	require.NoError(t, svc.AddVideo(ctx, owner.ID, playlist.ID, video.ID))
	// 重复添加幂等
	require.NoError(t, svc.AddVideo(ctx, owner.ID, playlist.ID, video.ID))

	detail, err := svc.Get(ctx, playlist.ID)
	require.NoError(t, err)
	require.Len(t, detail.Videos, 1)
	assert.Equal(t, video.ID, detail.Videos[0].ID)

	require.NoError(t, svc.RemoveVideo(ctx, owner.ID, playlist.ID, video.ID))

	detail, err = svc.Get(ctx, playlist.ID)
	require.NoError(t, err)
	assert.Empty(t, detail.Videos)

	require.NoError(t, svc.Delete(ctx, owner.ID, playlist.ID))

	_, err = svc.Get(ctx, playlist.ID)
	assert.True(t, isBizError(err, http.StatusNotFound))
}

func TestPlaylistService_OwnerChecks(t *testing.T) {
	svc, deps := newPlaylistService(t)
	ctx := context.Background()

	owner := seedUser(t, deps.db, "alice", "s3cret!")
	stranger := seedUser(t, deps.db, "bob", "s3cret!")
	video := seedVideo(t, deps.db, owner.ID, "clip", true)

	playlist, err := svc.Create(ctx, owner.ID, &types.CreatePlaylistRequest{
		Name:        "favorites",
		Description: "my picks",
	})
	require.NoError(t, err)

	err = svc.AddVideo(ctx, stranger.ID, playlist.ID, video.ID)
	assert.True(t, isBizError(err, http.StatusForbidden))

	_, err = svc.Update(ctx, stranger.ID, playlist.ID, &types.UpdatePlaylistRequest{Name: "x", Description: "y"})
	assert.True(t, isBizError(err, http.StatusForbidden))

	err = svc.Delete(ctx, stranger.ID, playlist.ID)
	assert.True(t, isBizError(err, http.StatusForbidden))

	// 视频不存在
	err = svc.AddVideo(ctx, owner.ID, playlist.ID, 123456)
	assert.True(t, isBizError(err, http.StatusNotFound))
}

func TestPlaylistService_UserPlaylists(t *testing.T) {
	svc, deps := newPlaylistService(t)
	ctx := context.Background()

	owner := seedUser(t, deps.db, "alice", "s3cret!")

	lists, err := svc.UserPlaylists(ctx, owner.ID)
	require.NoError(t, err)
	assert.NotNil(t, lists)
	assert.Empty(t, lists)

	_, err = svc.Create(ctx, owner.ID, &types.CreatePlaylistRequest{Name: "a", Description: "d"})
	require.NoError(t, err)

	lists, err = svc.UserPlaylists(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, lists, 1)

	_, err = svc.UserPlaylists(ctx, 123456)
	assert.True(t, isBizError(err, http.StatusNotFound))
}
