package dao

import (
	"context"

	"playtube/models"

	"gorm.io/gorm"
)

type CommentDAO struct {
	Repo[models.Comment]
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{Repo: NewRepo[models.Comment](db)}
}

// ListByVideo 视频评论分页列表 内联评论者公开信息 按时间倒序
func (d *CommentDAO) ListByVideo(ctx context.Context, videoID int64, offset, limit int) ([]*models.CommentWithOwner, int64, error) {
	var total int64
	err := d.Db.WithContext(ctx).
		Table("comments c").
		Joins("INNER JOIN users u ON c.owner_id = u.id").
		Where("c.video_id = ?", videoID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var rows []*models.CommentWithOwner
	err = d.Db.WithContext(ctx).
		Table("comments c").
		Select("c.*, "+ownerSelect).
		Joins("INNER JOIN users u ON c.owner_id = u.id").
		Where("c.video_id = ?", videoID).
		Order("c.created_at DESC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error

	return rows, total, err
}
