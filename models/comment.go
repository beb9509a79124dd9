package models

import (
	"time"
)

type Comment struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id,string"`
	VideoID   int64     `gorm:"column:video_id;not null;index:idx_video_id" json:"videoId,string"`
	OwnerID   int64     `gorm:"column:owner_id;not null;index:idx_comment_owner" json:"ownerId,string"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Comment) TableName() string {
	return "comments"
}

// CommentWithOwner 评论 + 评论者公开信息
type CommentWithOwner struct {
	Comment
	Owner OwnerProfile `gorm:"embedded" json:"owner"`
}
