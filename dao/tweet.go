package dao

import (
	"context"

	"playtube/models"

	"gorm.io/gorm"
)

type TweetDAO struct {
	Repo[models.Tweet]
}

func NewTweetDAO(db *gorm.DB) *TweetDAO {
	return &TweetDAO{Repo: NewRepo[models.Tweet](db)}
}

// ListByOwner 某用户的全部动态 内联作者公开信息 按时间倒序
func (d *TweetDAO) ListByOwner(ctx context.Context, ownerID int64) ([]*models.TweetWithOwner, error) {
	var rows []*models.TweetWithOwner
	err := d.Db.WithContext(ctx).
		Table("tweets t").
		Select("t.*, "+ownerSelect).
		Joins("INNER JOIN users u ON t.owner_id = u.id").
		Where("t.owner_id = ?", ownerID).
		Order("t.created_at DESC").
		Scan(&rows).Error
	return rows, err
}
