package service

import (
	"context"
	"time"

	"playtube/dao"
	"playtube/models"
	"playtube/pkg/response"
	"playtube/pkg/snowflake"
)

var _ ISubscriptionService = (*SubscriptionService)(nil)

type ISubscriptionService interface {
	Toggle(ctx context.Context, subscriberID, channelID int64) (bool, error)
	ChannelSubscribers(ctx context.Context, channelID int64) ([]*models.SubscriptionUser, error)
	SubscribedChannels(ctx context.Context, subscriberID int64) ([]*models.SubscriptionUser, error)
}

type SubscriptionService struct {
	SubscriptionDAO *dao.SubscriptionDAO
	UsersRepo       *dao.Users
}

// Toggle 订阅开关 与点赞同一套存在性语义
func (s *SubscriptionService) Toggle(ctx context.Context, subscriberID, channelID int64) (bool, error) {
	// 不能订阅自己
	if subscriberID == channelID {
		return false, response.BadRequest("不能订阅自己")
	}

	exist, err := s.UsersRepo.IsExist(ctx, "id = ?", channelID)
	if err != nil {
		return false, err
	}
	if !exist {
		return false, response.NotFound("频道不存在")
	}

	subscribed, err := s.SubscriptionDAO.IsSubscribed(ctx, subscriberID, channelID)
	if err != nil {
		return false, err
	}

	if subscribed {
		if _, err := s.SubscriptionDAO.DeleteBySubscriberChannel(ctx, subscriberID, channelID); err != nil {
			return false, err
		}
		return false, nil
	}

	sub := &models.Subscription{
		ID:           snowflake.GenID(),
		SubscriberID: subscriberID,
		ChannelID:    channelID,
		CreatedAt:    time.Now(),
	}
	if err := s.SubscriptionDAO.Create(ctx, sub); err != nil {
		if dao.IsDuplicate(err) {
			return true, nil
		}
		return false, err
	}

	return true, nil
}

// ChannelSubscribers 频道粉丝列表
func (s *SubscriptionService) ChannelSubscribers(ctx context.Context, channelID int64) ([]*models.SubscriptionUser, error) {
	exist, err := s.UsersRepo.IsExist(ctx, "id = ?", channelID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.NotFound("频道不存在")
	}
	return s.SubscriptionDAO.ListChannelSubscribers(ctx, channelID)
}

// SubscribedChannels 用户订阅的频道列表
func (s *SubscriptionService) SubscribedChannels(ctx context.Context, subscriberID int64) ([]*models.SubscriptionUser, error) {
	exist, err := s.UsersRepo.IsExist(ctx, "id = ?", subscriberID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.NotFound("用户不存在")
	}
	return s.SubscriptionDAO.ListSubscribedChannels(ctx, subscriberID)
}
