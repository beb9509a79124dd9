package service

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"time"

	"playtube/config"
	"playtube/dao"
	"playtube/dao/cache"
	"playtube/models"
	"playtube/pkg/encrypt"
	"playtube/pkg/jwt"
	"playtube/pkg/log"
	"playtube/pkg/response"
	"playtube/pkg/snowflake"
	"playtube/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

// ITokenStore 刷新令牌存储 同一用户同时只有一个有效令牌
type ITokenStore interface {
	Save(ctx context.Context, userID int64, token string, expire time.Duration) error
	Get(ctx context.Context, userID int64) (string, error)
	Delete(ctx context.Context, userID int64) error
}

type IUserService interface {
	Register(ctx context.Context, opt *UserRegisterOpt) (*models.User, error)
	Login(ctx context.Context, username, email, password string) (*models.User, *types.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*types.TokenPair, error)
	Logout(ctx context.Context, userID int64) error
	ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error
	UpdateProfile(ctx context.Context, userID int64, fullName, email string) (*models.User, error)
	UpdateAvatar(ctx context.Context, userID int64, header *multipart.FileHeader) (*models.User, error)
	UpdateCoverImage(ctx context.Context, userID int64, header *multipart.FileHeader) (*models.User, error)
	ChannelProfile(ctx context.Context, username string, viewerID int64) (*types.ChannelProfile, error)
	WatchHistory(ctx context.Context, userID int64) ([]*models.VideoWithOwner, error)
}

type UserService struct {
	UsersRepo       *dao.Users
	SubscriptionDAO *dao.SubscriptionDAO
	HistoryDAO      *dao.WatchHistoryDAO
	Media           IMediaService
	TokenStore      ITokenStore
	Jwt             *config.Jwt
}

type UserRegisterOpt struct {
	Username   string
	Email      string
	FullName   string
	Password   string
	Avatar     *multipart.FileHeader
	CoverImage *multipart.FileHeader
}

// Register 注册用户 头像先上传成功 用户记录才落库
func (s *UserService) Register(ctx context.Context, opt *UserRegisterOpt) (*models.User, error) {
	username := strings.ToLower(strings.TrimSpace(opt.Username))
	email := strings.ToLower(strings.TrimSpace(opt.Email))

	taken, err := s.UsersRepo.IsCredentialTaken(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, response.Conflict("用户名或邮箱已被注册")
	}

	if opt.Avatar == nil {
		return nil, response.BadRequest("头像不能为空")
	}

	avatarURL, err := s.Media.UploadImage(ctx, opt.Avatar, "avatar")
	if err != nil {
		return nil, err
	}

	coverURL := ""
	if opt.CoverImage != nil {
		coverURL, err = s.Media.UploadImage(ctx, opt.CoverImage, "cover")
		if err != nil {
			return nil, err
		}
	}

	user := &models.User{
		ID:         snowflake.GenID(),
		Username:   username,
		Email:      email,
		FullName:   strings.TrimSpace(opt.FullName),
		Avatar:     avatarURL,
		CoverImage: coverURL,
		Password:   encrypt.HashPassword(opt.Password),
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := s.UsersRepo.Create(ctx, user); err != nil {
		// 并发注册同名账号 唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.Conflict("用户名或邮箱已被注册")
		}
		return nil, err
	}

	return user, nil
}

// Login 登录处理 校验密码并签发令牌对
func (s *UserService) Login(ctx context.Context, username, email, password string) (*models.User, *types.TokenPair, error) {
	if username == "" && email == "" {
		return nil, nil, response.BadRequest("用户名或邮箱不能为空")
	}

	user, err := s.UsersRepo.FindByUsernameOrEmail(ctx, strings.ToLower(username), strings.ToLower(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, response.NotFound("登录账号不存在")
		}
		return nil, nil, err
	}

	if !encrypt.VerifyPassword(user.Password, password) {
		return nil, nil, response.Unauthorized("登录密码填写错误")
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	return user, pair, nil
}

// issueTokens 签发访问/刷新令牌 刷新令牌写入存储 覆盖旧值
func (s *UserService) issueTokens(ctx context.Context, user *models.User) (*types.TokenPair, error) {
	secret := []byte(s.Jwt.Secret)

	accessToken, err := jwt.GenerateToken(secret, user.ID, user.Username, jwt.TypeAccess, s.AccessExpire())
	if err != nil {
		return nil, err
	}

	refreshToken, err := jwt.GenerateToken(secret, user.ID, user.Username, jwt.TypeRefresh, s.RefreshExpire())
	if err != nil {
		return nil, err
	}

	if err := s.TokenStore.Save(ctx, user.ID, refreshToken, s.RefreshExpire()); err != nil {
		return nil, err
	}

	return &types.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh 刷新令牌轮换 旧令牌必须与当前存储值一致
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*types.TokenPair, error) {
	if refreshToken == "" {
		return nil, response.Unauthorized("缺少刷新令牌")
	}

	claims, err := jwt.ParseToken([]byte(s.Jwt.Secret), jwt.TypeRefresh, refreshToken)
	if err != nil {
		return nil, response.Unauthorized("刷新令牌无效或已过期")
	}

	stored, err := s.TokenStore.Get(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, cache.ErrTokenNotFound) {
			return nil, response.Unauthorized("刷新令牌已失效")
		}
		return nil, err
	}
	// 已被更新的刷新令牌签发过新对 旧令牌作废
	if stored != refreshToken {
		return nil, response.Unauthorized("刷新令牌已被更新")
	}

	user, err := s.UsersRepo.FindById(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.Unauthorized("用户不存在")
		}
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Logout 删除存储的刷新令牌
func (s *UserService) Logout(ctx context.Context, userID int64) error {
	return s.TokenStore.Delete(ctx, userID)
}

// ChangePassword 修改密码
func (s *UserService) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	user, err := s.UsersRepo.FindById(ctx, userID)
	if err != nil {
		return response.NotFound("用户不存在")
	}

	if !encrypt.VerifyPassword(user.Password, oldPassword) {
		return response.Unauthorized("旧密码不正确")
	}

	return s.UsersRepo.UpdateById(ctx, userID, map[string]any{
		"password":   encrypt.HashPassword(newPassword),
		"updated_at": time.Now(),
	})
}

// UpdateProfile 更新昵称与邮箱
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, fullName, email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	err := s.UsersRepo.UpdateById(ctx, userID, map[string]any{
		"full_name":  strings.TrimSpace(fullName),
		"email":      email,
		"updated_at": time.Now(),
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.Conflict("邮箱已被占用")
		}
		return nil, err
	}

	return s.UsersRepo.FindById(ctx, userID)
}

// UpdateAvatar 换头像 先传新图 落库后再删旧图
func (s *UserService) UpdateAvatar(ctx context.Context, userID int64, header *multipart.FileHeader) (*models.User, error) {
	return s.replaceImage(ctx, userID, header, "avatar", "avatar")
}

// UpdateCoverImage 换封面
func (s *UserService) UpdateCoverImage(ctx context.Context, userID int64, header *multipart.FileHeader) (*models.User, error) {
	return s.replaceImage(ctx, userID, header, "cover", "cover_image")
}

func (s *UserService) replaceImage(ctx context.Context, userID int64, header *multipart.FileHeader, folder, column string) (*models.User, error) {
	if header == nil {
		return nil, response.BadRequest("缺少图片文件")
	}

	user, err := s.UsersRepo.FindById(ctx, userID)
	if err != nil {
		return nil, response.NotFound("用户不存在")
	}

	oldURL := user.Avatar
	if column == "cover_image" {
		oldURL = user.CoverImage
	}

	newURL, err := s.Media.UploadImage(ctx, header, folder)
	if err != nil {
		return nil, err
	}

	err = s.UsersRepo.UpdateById(ctx, userID, map[string]any{
		column:       newURL,
		"updated_at": time.Now(),
	})
	if err != nil {
		return nil, err
	}

	// 旧图删除失败只记日志 记录已指向新图
	if oldURL != "" {
		if delErr := s.Media.Delete(ctx, oldURL); delErr != nil {
			log.L.Warn("delete old media failed", zap.String("url", oldURL), zap.Error(delErr))
		}
	}

	return s.UsersRepo.FindById(ctx, userID)
}

// ChannelProfile 频道主页 订阅统计 + 当前用户是否已订阅
func (s *UserService) ChannelProfile(ctx context.Context, username string, viewerID int64) (*types.ChannelProfile, error) {
	user, err := s.UsersRepo.FindByUsername(ctx, strings.ToLower(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("频道不存在")
		}
		return nil, err
	}

	subscribers, err := s.SubscriptionDAO.CountSubscribers(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	subscribedTo, err := s.SubscriptionDAO.CountSubscribedChannels(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	isSubscribed, err := s.SubscriptionDAO.IsSubscribed(ctx, viewerID, user.ID)
	if err != nil {
		return nil, err
	}

	return &types.ChannelProfile{
		ID:              user.ID,
		Username:        user.Username,
		FullName:        user.FullName,
		Avatar:          user.Avatar,
		CoverImage:      user.CoverImage,
		SubscriberCount: subscribers,
		SubscribedTo:    subscribedTo,
		IsSubscribed:    isSubscribed,
	}, nil
}

// WatchHistory 观看历史
func (s *UserService) WatchHistory(ctx context.Context, userID int64) ([]*models.VideoWithOwner, error) {
	videos, err := s.HistoryDAO.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = make([]*models.VideoWithOwner, 0)
	}
	return videos, nil
}

func (s *UserService) AccessExpire() time.Duration {
	return time.Duration(s.Jwt.AccessExpire) * time.Second
}

func (s *UserService) RefreshExpire() time.Duration {
	return time.Duration(s.Jwt.RefreshExpire) * time.Second
}
