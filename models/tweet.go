package models

import (
	"time"
)

type Tweet struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id,string"`
	OwnerID   int64     `gorm:"column:owner_id;not null;index:idx_tweet_owner" json:"ownerId,string"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Tweet) TableName() string {
	return "tweets"
}

// TweetWithOwner 动态 + 作者公开信息
type TweetWithOwner struct {
	Tweet
	Owner OwnerProfile `gorm:"embedded" json:"owner"`
}
