package dao

import (
	"context"
	"time"

	"playtube/models"
	"playtube/pkg/snowflake"

	"gorm.io/gorm"
)

type WatchHistoryDAO struct {
	Repo[models.WatchHistory]
}

func NewWatchHistoryDAO(db *gorm.DB) *WatchHistoryDAO {
	return &WatchHistoryDAO{Repo: NewRepo[models.WatchHistory](db)}
}

// Exists 该视频是否已计入该用户观看历史
func (d *WatchHistoryDAO) Exists(ctx context.Context, userID, videoID int64) (bool, error) {
	return d.Repo.IsExist(ctx, "user_id = ? AND video_id = ?", userID, videoID)
}

// RecordView 写入观看历史并为视频播放量 +1 两步在一个事务里
// 历史已存在时整体跳过 播放量不变 返回 counted=false
func (d *WatchHistoryDAO) RecordView(ctx context.Context, userID, videoID int64) (counted bool, err error) {
	err = d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.WatchHistory
		findErr := tx.Where("user_id = ? AND video_id = ?", userID, videoID).
			Limit(1).
			Find(&item).Error
		if findErr != nil {
			return findErr
		}
		if item.ID != 0 {
			return nil
		}

		item = models.WatchHistory{
			ID:        snowflake.GenID(),
			UserID:    userID,
			VideoID:   videoID,
			WatchedAt: time.Now(),
		}
		if createErr := tx.Create(&item).Error; createErr != nil {
			// 并发观看同一视频 另一个请求先写入 计数也由它完成
			if IsDuplicate(createErr) {
				return nil
			}
			return createErr
		}

		counted = true
		return tx.Model(&models.Video{}).
			Where("id = ?", videoID).
			UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
	})
	if err != nil {
		return false, err
	}
	return counted, nil
}

// ListByUser 观看历史 内联视频与所有者 按观看时间倒序
// 历史指向已删除视频时 JOIN 不命中 该行自然被过滤
func (d *WatchHistoryDAO) ListByUser(ctx context.Context, userID int64) ([]*models.VideoWithOwner, error) {
	var rows []*models.VideoWithOwner
	err := d.Db.WithContext(ctx).
		Table("watch_histories w").
		Select("v.*, "+ownerSelect).
		Joins("INNER JOIN videos v ON w.video_id = v.id").
		Joins("INNER JOIN users u ON v.owner_id = u.id").
		Where("w.user_id = ?", userID).
		Order("w.watched_at DESC").
		Scan(&rows).Error
	return rows, err
}
