package dao

import (
	"context"

	"playtube/models"

	"gorm.io/gorm"
)

type SubscriptionDAO struct {
	Repo[models.Subscription]
}

func NewSubscriptionDAO(db *gorm.DB) *SubscriptionDAO {
	return &SubscriptionDAO{Repo: NewRepo[models.Subscription](db)}
}

// IsSubscribed 是否已订阅
func (d *SubscriptionDAO) IsSubscribed(ctx context.Context, subscriberID, channelID int64) (bool, error) {
	return d.Repo.IsExist(ctx, "subscriber_id = ? AND channel_id = ?", subscriberID, channelID)
}

// DeleteBySubscriberChannel 按键删除 返回删除行数
func (d *SubscriptionDAO) DeleteBySubscriberChannel(ctx context.Context, subscriberID, channelID int64) (int64, error) {
	res := d.Db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&models.Subscription{})
	return res.RowsAffected, res.Error
}

// CountSubscribers 频道粉丝数
func (d *SubscriptionDAO) CountSubscribers(ctx context.Context, channelID int64) (int64, error) {
	return d.Repo.Count(ctx, "channel_id = ?", channelID)
}

// CountSubscribedChannels 用户订阅的频道数
func (d *SubscriptionDAO) CountSubscribedChannels(ctx context.Context, subscriberID int64) (int64, error) {
	return d.Repo.Count(ctx, "subscriber_id = ?", subscriberID)
}

// ListChannelSubscribers 频道粉丝列表（按订阅时间倒序）
func (d *SubscriptionDAO) ListChannelSubscribers(ctx context.Context, channelID int64) ([]*models.SubscriptionUser, error) {
	var rows []*models.SubscriptionUser
	err := d.Db.WithContext(ctx).
		Table("subscriptions s").
		Select("u.id AS user_id, u.username, u.full_name, u.avatar, s.created_at AS subscribed_at").
		Joins("INNER JOIN users u ON s.subscriber_id = u.id").
		Where("s.channel_id = ?", channelID).
		Order("s.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// ListSubscribedChannels 用户订阅的频道列表（按订阅时间倒序）
func (d *SubscriptionDAO) ListSubscribedChannels(ctx context.Context, subscriberID int64) ([]*models.SubscriptionUser, error) {
	var rows []*models.SubscriptionUser
	err := d.Db.WithContext(ctx).
		Table("subscriptions s").
		Select("u.id AS user_id, u.username, u.full_name, u.avatar, s.created_at AS subscribed_at").
		Joins("INNER JOIN users u ON s.channel_id = u.id").
		Where("s.subscriber_id = ?", subscriberID).
		Order("s.created_at DESC").
		Scan(&rows).Error
	return rows, err
}
