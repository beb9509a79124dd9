package models

import (
	"time"
)

type Playlist struct {
	ID          int64     `gorm:"column:id;primary_key" json:"id,string"`
	OwnerID     int64     `gorm:"column:owner_id;not null;index:idx_playlist_owner" json:"ownerId,string"`
	Name        string    `gorm:"column:name;type:varchar(128);not null" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Playlist) TableName() string {
	return "playlists"
}

// PlaylistVideo 播放列表成员关系 (playlist_id, video_id) 唯一
type PlaylistVideo struct {
	ID         int64     `gorm:"primaryKey" json:"id,string"`
	PlaylistID int64     `gorm:"column:playlist_id;not null;uniqueIndex:uk_playlist_video" json:"playlistId,string"`
	VideoID    int64     `gorm:"column:video_id;not null;uniqueIndex:uk_playlist_video" json:"videoId,string"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (PlaylistVideo) TableName() string {
	return "playlist_videos"
}
