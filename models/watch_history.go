package models

import (
	"time"
)

// WatchHistory 观看历史 (user_id, video_id) 唯一 记录存在即已计入播放量
type WatchHistory struct {
	ID        int64     `gorm:"primaryKey" json:"id,string"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_user_video" json:"userId,string"`
	VideoID   int64     `gorm:"column:video_id;not null;uniqueIndex:uk_user_video" json:"videoId,string"`
	WatchedAt time.Time `gorm:"column:watched_at;index:idx_watched_at" json:"watchedAt"`
}

func (WatchHistory) TableName() string {
	return "watch_histories"
}
