package models

import (
	"time"
)

// Subscription 订阅关系 记录存在即已订阅 (subscriber_id, channel_id) 唯一
type Subscription struct {
	ID           int64     `gorm:"primaryKey" json:"id,string"`
	SubscriberID int64     `gorm:"column:subscriber_id;not null;uniqueIndex:uk_subscriber_channel" json:"subscriberId,string"`
	ChannelID    int64     `gorm:"column:channel_id;not null;uniqueIndex:uk_subscriber_channel;index:idx_channel_id" json:"channelId,string"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// SubscriptionUser 订阅列表联表结果（粉丝或被订阅频道的公开信息）
type SubscriptionUser struct {
	UserID       int64     `gorm:"column:user_id" json:"id,string"`
	Username     string    `gorm:"column:username" json:"username"`
	FullName     string    `gorm:"column:full_name" json:"fullName"`
	Avatar       string    `gorm:"column:avatar" json:"avatar"`
	SubscribedAt time.Time `gorm:"column:subscribed_at" json:"subscribedAt"`
}
