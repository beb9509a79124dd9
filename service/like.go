package service

import (
	"context"
	"time"

	"playtube/dao"
	"playtube/models"
	"playtube/pkg/response"
	"playtube/pkg/snowflake"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	Toggle(ctx context.Context, userID int64, targetType string, targetID int64) (bool, error)
	LikedVideos(ctx context.Context, userID int64) ([]*models.VideoWithOwner, error)
	LikedTweets(ctx context.Context, userID int64) ([]*models.TweetWithOwner, error)
}

type LikeService struct {
	LikeDAO    *dao.LikeDAO
	VideoDAO   *dao.VideoDAO
	CommentDAO *dao.CommentDAO
	TweetDAO   *dao.TweetDAO
}

// Toggle 点赞开关 记录存在则删除(OFF) 不存在则创建(ON)
// 并发双插由唯一索引拦截 冲突按 ON 处理 不会出现第二条记录
func (s *LikeService) Toggle(ctx context.Context, userID int64, targetType string, targetID int64) (bool, error) {
	if err := s.checkTarget(ctx, targetType, targetID); err != nil {
		return false, err
	}

	existing, err := s.LikeDAO.GetByUserTarget(ctx, userID, targetType, targetID)
	if err != nil {
		return false, err
	}

	if existing != nil {
		// 删 0 行说明并发请求已先删掉 最终状态同样是 OFF
		if _, err := s.LikeDAO.DeleteByUserTarget(ctx, userID, targetType, targetID); err != nil {
			return false, err
		}
		return false, nil
	}

	like := &models.Like{
		ID:         snowflake.GenID(),
		UserID:     userID,
		TargetType: targetType,
		TargetID:   targetID,
		CreatedAt:  time.Now(),
	}
	if err := s.LikeDAO.Create(ctx, like); err != nil {
		if dao.IsDuplicate(err) {
			return true, nil
		}
		return false, err
	}

	return true, nil
}

func (s *LikeService) checkTarget(ctx context.Context, targetType string, targetID int64) error {
	var (
		exist bool
		err   error
	)

	switch targetType {
	case models.LikeTargetVideo:
		exist, err = s.VideoDAO.IsExist(ctx, "id = ?", targetID)
	case models.LikeTargetComment:
		exist, err = s.CommentDAO.IsExist(ctx, "id = ?", targetID)
	case models.LikeTargetTweet:
		exist, err = s.TweetDAO.IsExist(ctx, "id = ?", targetID)
	default:
		return response.BadRequest("不支持的点赞目标类型")
	}

	if err != nil {
		return err
	}
	if !exist {
		return response.NotFound("点赞目标不存在")
	}
	return nil
}

// LikedVideos 用户点赞过的视频
func (s *LikeService) LikedVideos(ctx context.Context, userID int64) ([]*models.VideoWithOwner, error) {
	videos, err := s.LikeDAO.ListLikedVideos(ctx, userID)
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = make([]*models.VideoWithOwner, 0)
	}
	return videos, nil
}

// LikedTweets 用户点赞过的动态
func (s *LikeService) LikedTweets(ctx context.Context, userID int64) ([]*models.TweetWithOwner, error) {
	tweets, err := s.LikeDAO.ListLikedTweets(ctx, userID)
	if err != nil {
		return nil, err
	}
	if tweets == nil {
		tweets = make([]*models.TweetWithOwner, 0)
	}
	return tweets, nil
}
