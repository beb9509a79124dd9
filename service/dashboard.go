package service

import (
	"context"

	"playtube/dao"
	"playtube/models"
	"playtube/pkg/response"
	"playtube/types"

	"github.com/sourcegraph/conc/pool"
)

var _ IDashboardService = (*DashboardService)(nil)

type IDashboardService interface {
	Stats(ctx context.Context, channelID int64) (*types.ChannelStats, error)
	ChannelVideos(ctx context.Context, channelID int64) ([]*models.Video, error)
}

type DashboardService struct {
	VideoDAO        *dao.VideoDAO
	LikeDAO         *dao.LikeDAO
	SubscriptionDAO *dao.SubscriptionDAO
	UsersDAO        *dao.Users
}

// Stats 频道统计 三路计数并发执行 任一失败整体失败
func (s *DashboardService) Stats(ctx context.Context, channelID int64) (*types.ChannelStats, error) {
	exist, err := s.UsersDAO.IsExist(ctx, "id = ?", channelID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.NotFound("用户不存在")
	}

	stats := &types.ChannelStats{}
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		likes, err := s.LikeDAO.CountByUser(ctx, channelID)
		stats.TotalLikes = likes
		return err
	})
	p.Go(func(ctx context.Context) error {
		subs, err := s.SubscriptionDAO.CountSubscribers(ctx, channelID)
		stats.TotalSubscribers = subs
		return err
	})
	p.Go(func(ctx context.Context) error {
		videos, views, err := s.VideoDAO.StatsByOwner(ctx, channelID)
		stats.TotalVideos = videos
		stats.TotalViews = views
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	return stats, nil
}

// ChannelVideos 频道后台视频列表 含未发布
func (s *DashboardService) ChannelVideos(ctx context.Context, channelID int64) ([]*models.Video, error) {
	videos, err := s.VideoDAO.FindAllByOwner(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = make([]*models.Video, 0)
	}
	return videos, nil
}
