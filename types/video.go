package types

import "playtube/models"

type ListVideosRequest struct {
	PageRequest
	Query    string `form:"query"`
	SortBy   string `form:"sortBy"`
	SortType string `form:"sortType"` // asc / desc 默认 desc
	UserID   int64  `form:"userId"`
}

type ListVideosResponse struct {
	Videos []*models.VideoWithOwner `json:"videos"`
	Meta   PageMeta                 `json:"meta"`
}

// 发布视频（multipart videoFile 必传 thumbnail 可选）
type PublishVideoRequest struct {
	Title       string  `form:"title" binding:"required,max=256"`
	Description string  `form:"description" binding:"required"`
	Duration    float64 `form:"duration"`
}

type UpdateVideoRequest struct {
	Title       string `json:"title" binding:"required,max=256"`
	Description string `json:"description" binding:"required"`
}
