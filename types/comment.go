package types

import "playtube/models"

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=1000"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=1000"`
}

type ListCommentsResponse struct {
	Comments []*models.CommentWithOwner `json:"comments"`
	Meta     PageMeta                   `json:"meta"`
}
