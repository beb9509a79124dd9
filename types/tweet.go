package types

type CreateTweetRequest struct {
	Content string `json:"content" binding:"required,min=1,max=500"`
}

type UpdateTweetRequest struct {
	Content string `json:"content" binding:"required,min=1,max=500"`
}
