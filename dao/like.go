package dao

import (
	"context"
	"errors"

	"playtube/models"

	"gorm.io/gorm"
)

type LikeDAO struct {
	Repo[models.Like]
}

func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{Repo: NewRepo[models.Like](db)}
}

// GetByUserTarget 查询指定用户对指定目标的点赞记录 不存在返回 nil
func (d *LikeDAO) GetByUserTarget(ctx context.Context, userID int64, targetType string, targetID int64) (*models.Like, error) {
	var item models.Like
	err := d.Db.WithContext(ctx).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID).
		Limit(1).
		Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// DeleteByUserTarget 按键删除 返回删除行数 重复删除删 0 行
func (d *LikeDAO) DeleteByUserTarget(ctx context.Context, userID int64, targetType string, targetID int64) (int64, error) {
	res := d.Db.WithContext(ctx).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID).
		Delete(&models.Like{})
	return res.RowsAffected, res.Error
}

// IsDuplicate 唯一索引冲突 并发 toggle 下另一个请求先插入成功
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// CountByUser 某用户点出的赞总数
func (d *LikeDAO) CountByUser(ctx context.Context, userID int64) (int64, error) {
	return d.Repo.Count(ctx, "user_id = ?", userID)
}

// ListLikedVideos 用户点赞过的视频 内联视频与所有者
// 点赞指向已删除视频时 JOIN 不命中 该行自然被过滤
func (d *LikeDAO) ListLikedVideos(ctx context.Context, userID int64) ([]*models.VideoWithOwner, error) {
	var rows []*models.VideoWithOwner
	err := d.Db.WithContext(ctx).
		Table("likes l").
		Select("v.*, "+ownerSelect).
		Joins("INNER JOIN videos v ON l.target_id = v.id").
		Joins("INNER JOIN users u ON v.owner_id = u.id").
		Where("l.user_id = ? AND l.target_type = ?", userID, models.LikeTargetVideo).
		Order("l.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// ListLikedTweets 用户点赞过的动态 内联作者
func (d *LikeDAO) ListLikedTweets(ctx context.Context, userID int64) ([]*models.TweetWithOwner, error) {
	var rows []*models.TweetWithOwner
	err := d.Db.WithContext(ctx).
		Table("likes l").
		Select("t.*, "+ownerSelect).
		Joins("INNER JOIN tweets t ON l.target_id = t.id").
		Joins("INNER JOIN users u ON t.owner_id = u.id").
		Where("l.user_id = ? AND l.target_type = ?", userID, models.LikeTargetTweet).
		Order("l.created_at DESC").
		Scan(&rows).Error
	return rows, err
}
