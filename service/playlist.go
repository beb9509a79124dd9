package service

import (
	"context"
	"errors"
	"time"

	"playtube/dao"
	"playtube/models"
	"playtube/pkg/response"
	"playtube/pkg/snowflake"
	"playtube/types"

	"gorm.io/gorm"
)

var _ IPlaylistService = (*PlaylistService)(nil)

type IPlaylistService interface {
	Create(ctx context.Context, ownerID int64, req *types.CreatePlaylistRequest) (*models.Playlist, error)
	Get(ctx context.Context, playlistID int64) (*types.PlaylistDetail, error)
	UserPlaylists(ctx context.Context, userID int64) ([]*models.Playlist, error)
	Update(ctx context.Context, ownerID, playlistID int64, req *types.UpdatePlaylistRequest) (*models.Playlist, error)
	Delete(ctx context.Context, ownerID, playlistID int64) error
	AddVideo(ctx context.Context, ownerID, playlistID, videoID int64) error
	RemoveVideo(ctx context.Context, ownerID, playlistID, videoID int64) error
}

type PlaylistService struct {
	PlaylistDAO *dao.PlaylistDAO
	VideoDAO    *dao.VideoDAO
	UsersDAO    *dao.Users
}

func (s *PlaylistService) Create(ctx context.Context, ownerID int64, req *types.CreatePlaylistRequest) (*models.Playlist, error) {
	playlist := &models.Playlist{
		ID:          snowflake.GenID(),
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.PlaylistDAO.Create(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// Get 播放列表详情 附成员视频 公开可读
func (s *PlaylistService) Get(ctx context.Context, playlistID int64) (*types.PlaylistDetail, error) {
	playlist, err := s.PlaylistDAO.FindById(ctx, playlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("播放列表不存在")
		}
		return nil, err
	}

	videos, err := s.PlaylistDAO.ListVideos(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = make([]*models.VideoWithOwner, 0)
	}

	return &types.PlaylistDetail{Playlist: playlist, Videos: videos}, nil
}

// UserPlaylists 某用户的全部播放列表 用户必须存在
func (s *PlaylistService) UserPlaylists(ctx context.Context, userID int64) ([]*models.Playlist, error) {
	exist, err := s.UsersDAO.IsExist(ctx, "id = ?", userID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.NotFound("用户不存在")
	}

	lists, err := s.PlaylistDAO.FindAllByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if lists == nil {
		lists = make([]*models.Playlist, 0)
	}
	return lists, nil
}

func (s *PlaylistService) findOwned(ctx context.Context, ownerID, playlistID int64) (*models.Playlist, error) {
	playlist, err := s.PlaylistDAO.FindById(ctx, playlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("播放列表不存在")
		}
		return nil, err
	}
	if playlist.OwnerID != ownerID {
		return nil, response.Forbidden("无权操作该播放列表")
	}
	return playlist, nil
}

// Update 修改名称与描述 仅限所有者
func (s *PlaylistService) Update(ctx context.Context, ownerID, playlistID int64, req *types.UpdatePlaylistRequest) (*models.Playlist, error) {
	if _, err := s.findOwned(ctx, ownerID, playlistID); err != nil {
		return nil, err
	}

	err := s.PlaylistDAO.UpdateById(ctx, playlistID, map[string]any{
		"name":        req.Name,
		"description": req.Description,
		"updated_at":  time.Now(),
	})
	if err != nil {
		return nil, err
	}

	return s.PlaylistDAO.FindById(ctx, playlistID)
}

// Delete 删除播放列表 先清空成员关系 不影响视频本身
func (s *PlaylistService) Delete(ctx context.Context, ownerID, playlistID int64) error {
	if _, err := s.findOwned(ctx, ownerID, playlistID); err != nil {
		return err
	}
	if err := s.PlaylistDAO.RemoveAllVideos(ctx, playlistID); err != nil {
		return err
	}
	return s.PlaylistDAO.DeleteById(ctx, playlistID)
}

// AddVideo 向播放列表添加视频 仅限所有者 重复添加幂等
func (s *PlaylistService) AddVideo(ctx context.Context, ownerID, playlistID, videoID int64) error {
	if _, err := s.findOwned(ctx, ownerID, playlistID); err != nil {
		return err
	}

	exist, err := s.VideoDAO.IsExist(ctx, "id = ?", videoID)
	if err != nil {
		return err
	}
	if !exist {
		return response.NotFound("视频不存在")
	}

	return s.PlaylistDAO.AddVideo(ctx, &models.PlaylistVideo{
		ID:         snowflake.GenID(),
		PlaylistID: playlistID,
		VideoID:    videoID,
		CreatedAt:  time.Now(),
	})
}

// RemoveVideo 从播放列表移除视频 仅限所有者 重复移除幂等
func (s *PlaylistService) RemoveVideo(ctx context.Context, ownerID, playlistID, videoID int64) error {
	if _, err := s.findOwned(ctx, ownerID, playlistID); err != nil {
		return err
	}
	return s.PlaylistDAO.RemoveVideo(ctx, playlistID, videoID)
}
