package service

import (
	"context"
	"errors"
	"time"

	"playtube/dao"
	"playtube/models"
	"playtube/pkg/response"
	"playtube/pkg/snowflake"

	"gorm.io/gorm"
)

var _ ITweetService = (*TweetService)(nil)

type ITweetService interface {
	Create(ctx context.Context, ownerID int64, content string) (*models.Tweet, error)
	UserTweets(ctx context.Context, userID int64) ([]*models.TweetWithOwner, error)
	Update(ctx context.Context, ownerID, tweetID int64, content string) (*models.Tweet, error)
	Delete(ctx context.Context, ownerID, tweetID int64) error
}

type TweetService struct {
	TweetDAO *dao.TweetDAO
	UsersDAO *dao.Users
}

func (s *TweetService) Create(ctx context.Context, ownerID int64, content string) (*models.Tweet, error) {
	tweet := &models.Tweet{
		ID:        snowflake.GenID(),
		OwnerID:   ownerID,
		Content:   content,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.TweetDAO.Create(ctx, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

// UserTweets 某用户的全部动态 用户必须存在
func (s *TweetService) UserTweets(ctx context.Context, userID int64) ([]*models.TweetWithOwner, error) {
	exist, err := s.UsersDAO.IsExist(ctx, "id = ?", userID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.NotFound("用户不存在")
	}

	tweets, err := s.TweetDAO.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if tweets == nil {
		tweets = make([]*models.TweetWithOwner, 0)
	}
	return tweets, nil
}

func (s *TweetService) findOwned(ctx context.Context, ownerID, tweetID int64) (*models.Tweet, error) {
	tweet, err := s.TweetDAO.FindById(ctx, tweetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("动态不存在")
		}
		return nil, err
	}
	if tweet.OwnerID != ownerID {
		return nil, response.Forbidden("无权操作该动态")
	}
	return tweet, nil
}

// Update 修改动态内容 仅限作者
func (s *TweetService) Update(ctx context.Context, ownerID, tweetID int64, content string) (*models.Tweet, error) {
	if _, err := s.findOwned(ctx, ownerID, tweetID); err != nil {
		return nil, err
	}

	err := s.TweetDAO.UpdateById(ctx, tweetID, map[string]any{
		"content":    content,
		"updated_at": time.Now(),
	})
	if err != nil {
		return nil, err
	}

	return s.TweetDAO.FindById(ctx, tweetID)
}

// Delete 删除动态 仅限作者
func (s *TweetService) Delete(ctx context.Context, ownerID, tweetID int64) error {
	if _, err := s.findOwned(ctx, ownerID, tweetID); err != nil {
		return err
	}
	return s.TweetDAO.DeleteById(ctx, tweetID)
}
