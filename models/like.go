package models

import (
	"time"
)

const (
	LikeTargetVideo   = "video"
	LikeTargetComment = "comment"
	LikeTargetTweet   = "tweet"
)

// Like 点赞关系 记录存在即点赞 (user_id, target_type, target_id) 唯一
type Like struct {
	ID         int64     `gorm:"primaryKey" json:"id,string"`
	UserID     int64     `gorm:"column:user_id;not null;uniqueIndex:uk_user_target" json:"userId,string"`
	TargetType string    `gorm:"column:target_type;type:varchar(16);not null;uniqueIndex:uk_user_target" json:"targetType"`
	TargetID   int64     `gorm:"column:target_id;not null;uniqueIndex:uk_user_target" json:"targetId,string"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Like) TableName() string {
	return "likes"
}
