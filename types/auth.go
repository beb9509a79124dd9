package types

import "playtube/models"

// 注册请求（multipart 表单 avatar 必传 coverImage 可选）
type RegisterRequest struct {
	Username string `form:"username" binding:"required,min=3,max=64"`
	Email    string `form:"email" binding:"required,email"`
	FullName string `form:"fullName" binding:"required,max=128"`
	Password string `form:"password" binding:"required,min=6,max=72"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6,max=72"`
}

type UpdateProfileRequest struct {
	FullName string `json:"fullName" binding:"required,max=128"`
	Email    string `json:"email" binding:"required,email"`
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type LoginResponse struct {
	User *models.User `json:"user"`
	TokenPair
}

// ChannelProfile 频道主页 用户公开信息 + 订阅统计
type ChannelProfile struct {
	ID              int64  `json:"id,string"`
	Username        string `json:"username"`
	FullName        string `json:"fullName"`
	Avatar          string `json:"avatar"`
	CoverImage      string `json:"coverImage"`
	SubscriberCount int64  `json:"subscriberCount"`
	SubscribedTo    int64  `json:"channelsSubscribedToCount"`
	IsSubscribed    bool   `json:"isSubscribed"`
}
