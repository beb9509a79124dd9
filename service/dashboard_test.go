package service

import (
	"context"
	"net/http"
	"testing"

	"playtube/dao"
	"playtube/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Stats(t *testing.T) {
	db := newTestDB(t)
	svc := &DashboardService{
		VideoDAO:        dao.NewVideoDAO(db),
		LikeDAO:         dao.NewLikeDAO(db),
		SubscriptionDAO: dao.NewSubscriptionDAO(db),
		UsersDAO:        dao.NewUsers(db),
	}
	ctx := context.Background()

	alice := seedUser(t, db, "alice", "s3cret!")
	bob := seedUser(t, db, "bob", "s3cret!")

	v1 := seedVideo(t, db, alice.ID, "one", true)
	seedVideo(t, db, alice.ID, "two", false)
	require.NoError(t, db.Model(v1).UpdateColumn("views", 9).Error)

	subSvc := &SubscriptionService{SubscriptionDAO: svc.SubscriptionDAO, UsersRepo: svc.UsersDAO}
	_, err := subSvc.Toggle(ctx, bob.ID, alice.ID)
	require.NoError(t, err)

	likeSvc := newLikeService(svc.LikeDAO, svc.VideoDAO, dao.NewCommentDAO(db), dao.NewTweetDAO(db))
	_, err = likeSvc.Toggle(ctx, alice.ID, models.LikeTargetVideo, v1.ID)
	require.NoError(t, err)

	stats, err := svc.Stats(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalLikes)
	assert.Equal(t, int64(1), stats.TotalSubscribers)
	assert.Equal(t, int64(2), stats.TotalVideos)
	assert.Equal(t, int64(9), stats.TotalViews)
}

func TestDashboardService_Stats_UnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := &DashboardService{
		VideoDAO:        dao.NewVideoDAO(db),
		LikeDAO:         dao.NewLikeDAO(db),
		SubscriptionDAO: dao.NewSubscriptionDAO(db),
		UsersDAO:        dao.NewUsers(db),
	}

	_, err := svc.Stats(context.Background(), 123456)
	assert.True(t, isBizError(err, http.StatusNotFound))
}

func TestDashboardService_ChannelVideos_IncludesUnpublished(t *testing.T) {
	db := newTestDB(t)
	svc := &DashboardService{
		VideoDAO:        dao.NewVideoDAO(db),
		LikeDAO:         dao.NewLikeDAO(db),
		SubscriptionDAO: dao.NewSubscriptionDAO(db),
		UsersDAO:        dao.NewUsers(db),
	}
	ctx := context.Background()

	alice := seedUser(t, db, "alice", "s3cret!")
	seedVideo(t, db, alice.ID, "published", true)
	seedVideo(t, db, alice.ID, "draft", false)

	videos, err := svc.ChannelVideos(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, videos, 2)

	// 没有视频时返回空数组
	bob := seedUser(t, db, "bob", "s3cret!")
	videos, err = svc.ChannelVideos(ctx, bob.ID)
	require.NoError(t, err)
	assert.NotNil(t, videos)
	assert.Empty(t, videos)
}
