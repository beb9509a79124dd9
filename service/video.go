package service

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"time"

	"playtube/dao"
	"playtube/models"
	"playtube/pkg/log"
	"playtube/pkg/response"
	"playtube/pkg/snowflake"
	"playtube/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IVideoService = (*VideoService)(nil)

type IVideoService interface {
	List(ctx context.Context, req *types.ListVideosRequest) (*types.ListVideosResponse, error)
	Publish(ctx context.Context, ownerID int64, req *types.PublishVideoRequest, videoFile, thumbnail *multipart.FileHeader) (*models.Video, error)
	Get(ctx context.Context, videoID int64) (*models.VideoWithOwner, error)
	UpdateDetails(ctx context.Context, ownerID, videoID int64, req *types.UpdateVideoRequest) (*models.Video, error)
	UpdateThumbnail(ctx context.Context, ownerID, videoID int64, header *multipart.FileHeader) (*models.Video, error)
	Delete(ctx context.Context, ownerID, videoID int64) error
	TogglePublish(ctx context.Context, ownerID, videoID int64) (*models.Video, error)
	IncrementView(ctx context.Context, userID, videoID int64) (bool, error)
}

type VideoService struct {
	VideoDAO   *dao.VideoDAO
	HistoryDAO *dao.WatchHistoryDAO
	Media      IMediaService
}

// List 分页联表查询 排序键必须命中白名单
func (s *VideoService) List(ctx context.Context, req *types.ListVideosRequest) (*types.ListVideosResponse, error) {
	req.Normalize()

	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}
	sortCol, ok := dao.VideoSortColumn(sortBy)
	if !ok {
		return nil, response.BadRequest("不支持的排序字段: " + req.SortBy)
	}

	videos, total, err := s.VideoDAO.List(ctx, dao.ListVideosOpt{
		Query:    req.Query,
		OwnerID:  req.UserID,
		SortCol:  sortCol,
		SortDesc: req.SortType != "asc",
		Offset:   req.Offset(),
		Limit:    req.Limit,
	})
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = make([]*models.VideoWithOwner, 0)
	}

	return &types.ListVideosResponse{
		Videos: videos,
		Meta:   types.NewPageMeta(req.Page, req.Limit, total),
	}, nil
}

// Publish 发布视频 两个资源都上传成功后记录才落库
func (s *VideoService) Publish(ctx context.Context, ownerID int64, req *types.PublishVideoRequest, videoFile, thumbnail *multipart.FileHeader) (*models.Video, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, response.BadRequest("标题和描述不能为空")
	}
	if videoFile == nil {
		return nil, response.BadRequest("视频文件不能为空")
	}

	videoURL, err := s.Media.UploadVideo(ctx, videoFile, "video")
	if err != nil {
		return nil, err
	}

	thumbnailURL := ""
	if thumbnail != nil {
		thumbnailURL, err = s.Media.UploadImage(ctx, thumbnail, "thumbnail")
		if err != nil {
			return nil, err
		}
	}

	video := &models.Video{
		ID:          snowflake.GenID(),
		OwnerID:     ownerID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		VideoFile:   videoURL,
		Thumbnail:   thumbnailURL,
		Duration:    req.Duration,
		IsPublished: true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.VideoDAO.Create(ctx, video); err != nil {
		return nil, err
	}

	return video, nil
}

// Get 已发布视频详情
func (s *VideoService) Get(ctx context.Context, videoID int64) (*models.VideoWithOwner, error) {
	video, err := s.VideoDAO.GetPublishedWithOwner(ctx, videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("视频不存在")
		}
		return nil, err
	}
	return video, nil
}

// findOwned 按 id 查视频并校验所有权
func (s *VideoService) findOwned(ctx context.Context, ownerID, videoID int64) (*models.Video, error) {
	video, err := s.VideoDAO.FindById(ctx, videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("视频不存在")
		}
		return nil, err
	}
	if video.OwnerID != ownerID {
		return nil, response.Forbidden("无权操作该视频")
	}
	return video, nil
}

// UpdateDetails 修改标题与描述
func (s *VideoService) UpdateDetails(ctx context.Context, ownerID, videoID int64, req *types.UpdateVideoRequest) (*models.Video, error) {
	if _, err := s.findOwned(ctx, ownerID, videoID); err != nil {
		return nil, err
	}

	err := s.VideoDAO.UpdateById(ctx, videoID, map[string]any{
		"title":       strings.TrimSpace(req.Title),
		"description": strings.TrimSpace(req.Description),
		"updated_at":  time.Now(),
	})
	if err != nil {
		return nil, err
	}

	return s.VideoDAO.FindById(ctx, videoID)
}

// UpdateThumbnail 换封面图 先传新图 落库后再删旧图
// 反过来删先于传 上传一旦失败旧图已丢 不可恢复
func (s *VideoService) UpdateThumbnail(ctx context.Context, ownerID, videoID int64, header *multipart.FileHeader) (*models.Video, error) {
	if header == nil {
		return nil, response.BadRequest("缩略图不能为空")
	}

	video, err := s.findOwned(ctx, ownerID, videoID)
	if err != nil {
		return nil, err
	}

	newURL, err := s.Media.UploadImage(ctx, header, "thumbnail")
	if err != nil {
		return nil, err
	}

	err = s.VideoDAO.UpdateById(ctx, videoID, map[string]any{
		"thumbnail":  newURL,
		"updated_at": time.Now(),
	})
	if err != nil {
		return nil, err
	}

	if video.Thumbnail != "" {
		if delErr := s.Media.Delete(ctx, video.Thumbnail); delErr != nil {
			log.L.Warn("delete old thumbnail failed", zap.String("url", video.Thumbnail), zap.Error(delErr))
		}
	}

	return s.VideoDAO.FindById(ctx, videoID)
}

// Delete 删除视频 先删外部资源再删记录
// 点赞/评论/播放列表成员不做级联 读侧 JOIN 自然过滤
func (s *VideoService) Delete(ctx context.Context, ownerID, videoID int64) error {
	video, err := s.findOwned(ctx, ownerID, videoID)
	if err != nil {
		return err
	}

	if err := s.Media.Delete(ctx, video.VideoFile); err != nil {
		return err
	}
	if video.Thumbnail != "" {
		if delErr := s.Media.Delete(ctx, video.Thumbnail); delErr != nil {
			log.L.Warn("delete thumbnail failed", zap.String("url", video.Thumbnail), zap.Error(delErr))
		}
	}

	return s.VideoDAO.DeleteById(ctx, videoID)
}

// TogglePublish 发布状态开关
func (s *VideoService) TogglePublish(ctx context.Context, ownerID, videoID int64) (*models.Video, error) {
	video, err := s.findOwned(ctx, ownerID, videoID)
	if err != nil {
		return nil, err
	}

	err = s.VideoDAO.UpdateById(ctx, videoID, map[string]any{
		"is_published": !video.IsPublished,
		"updated_at":   time.Now(),
	})
	if err != nil {
		return nil, err
	}

	return s.VideoDAO.FindById(ctx, videoID)
}

// IncrementView 播放量 +1 同一用户重复观看不重复计数
func (s *VideoService) IncrementView(ctx context.Context, userID, videoID int64) (bool, error) {
	exist, err := s.VideoDAO.IsExist(ctx, "id = ?", videoID)
	if err != nil {
		return false, err
	}
	if !exist {
		return false, response.NotFound("视频不存在")
	}

	return s.HistoryDAO.RecordView(ctx, userID, videoID)
}
