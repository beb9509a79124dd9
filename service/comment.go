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

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	Create(ctx context.Context, ownerID, videoID int64, content string) (*models.Comment, error)
	ListByVideo(ctx context.Context, videoID int64, page *types.PageRequest) (*types.ListCommentsResponse, error)
	Update(ctx context.Context, ownerID, commentID int64, content string) (*models.Comment, error)
	Delete(ctx context.Context, ownerID, commentID int64) error
}

type CommentService struct {
	CommentDAO *dao.CommentDAO
	VideoDAO   *dao.VideoDAO
}

// Create 发表评论 视频必须存在
func (s *CommentService) Create(ctx context.Context, ownerID, videoID int64, content string) (*models.Comment, error) {
	exist, err := s.VideoDAO.IsExist(ctx, "id = ?", videoID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.NotFound("视频不存在")
	}

	comment := &models.Comment{
		ID:        snowflake.GenID(),
		VideoID:   videoID,
		OwnerID:   ownerID,
		Content:   content,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.CommentDAO.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// ListByVideo 视频评论分页列表
func (s *CommentService) ListByVideo(ctx context.Context, videoID int64, page *types.PageRequest) (*types.ListCommentsResponse, error) {
	exist, err := s.VideoDAO.IsExist(ctx, "id = ?", videoID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.NotFound("视频不存在")
	}

	page.Normalize()
	comments, total, err := s.CommentDAO.ListByVideo(ctx, videoID, page.Offset(), page.Limit)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = make([]*models.CommentWithOwner, 0)
	}

	return &types.ListCommentsResponse{
		Comments: comments,
		Meta:     types.NewPageMeta(page.Page, page.Limit, total),
	}, nil
}

func (s *CommentService) findOwned(ctx context.Context, ownerID, commentID int64) (*models.Comment, error) {
	comment, err := s.CommentDAO.FindById(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("评论不存在")
		}
		return nil, err
	}
	if comment.OwnerID != ownerID {
		return nil, response.Forbidden("无权操作该评论")
	}
	return comment, nil
}

// Update 修改评论内容 仅限作者
func (s *CommentService) Update(ctx context.Context, ownerID, commentID int64, content string) (*models.Comment, error) {
	if _, err := s.findOwned(ctx, ownerID, commentID); err != nil {
		return nil, err
	}

	err := s.CommentDAO.UpdateById(ctx, commentID, map[string]any{
		"content":    content,
		"updated_at": time.Now(),
	})
	if err != nil {
		return nil, err
	}

	return s.CommentDAO.FindById(ctx, commentID)
}

// Delete 删除评论 仅限作者
func (s *CommentService) Delete(ctx context.Context, ownerID, commentID int64) error {
	if _, err := s.findOwned(ctx, ownerID, commentID); err != nil {
		return err
	}
	return s.CommentDAO.DeleteById(ctx, commentID)
}
