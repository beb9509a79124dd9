package types

import "playtube/models"

type CreatePlaylistRequest struct {
	Name        string `json:"name" binding:"required,max=128"`
	Description string `json:"description" binding:"required"`
}

type UpdatePlaylistRequest struct {
	Name        string `json:"name" binding:"required,max=128"`
	Description string `json:"description" binding:"required"`
}

// PlaylistDetail 播放列表 + 成员视频
type PlaylistDetail struct {
	*models.Playlist
	Videos []*models.VideoWithOwner `json:"videos"`
}
