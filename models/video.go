package models

import (
	"time"
)

type Video struct {
	ID          int64     `gorm:"column:id;primary_key" json:"id,string"`
	OwnerID     int64     `gorm:"column:owner_id;not null;index:idx_owner_published" json:"ownerId,string"`
	Title       string    `gorm:"column:title;type:varchar(256);not null;default:''" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	VideoFile   string    `gorm:"column:video_file;type:varchar(512);not null" json:"videoFile"`
	Thumbnail   string    `gorm:"column:thumbnail;type:varchar(512);not null;default:''" json:"thumbnail"`
	Duration    float64   `gorm:"column:duration;not null;default:0" json:"duration"`
	Views       int64     `gorm:"column:views;not null;default:0" json:"views"`
	IsPublished bool      `gorm:"column:is_published;not null;default:false;index:idx_owner_published" json:"isPublished"`
	CreatedAt   time.Time `gorm:"column:created_at;index:idx_created_at" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Video) TableName() string {
	return "videos"
}

// VideoWithOwner 联表查询结果 视频 + 所有者公开信息
type VideoWithOwner struct {
	Video
	Owner OwnerProfile `gorm:"embedded" json:"owner"`
}
