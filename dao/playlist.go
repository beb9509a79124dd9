package dao

import (
	"context"

	"playtube/models"

	"gorm.io/gorm"
)

type PlaylistDAO struct {
	Repo[models.Playlist]
}

func NewPlaylistDAO(db *gorm.DB) *PlaylistDAO {
	return &PlaylistDAO{Repo: NewRepo[models.Playlist](db)}
}

// FindAllByOwner 某用户的全部播放列表
func (d *PlaylistDAO) FindAllByOwner(ctx context.Context, ownerID int64) ([]*models.Playlist, error) {
	var lists []*models.Playlist
	err := d.Db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&lists).Error
	return lists, err
}

// AddVideo 添加成员关系 已存在时由唯一索引拦截 视为幂等成功
func (d *PlaylistDAO) AddVideo(ctx context.Context, item *models.PlaylistVideo) error {
	err := d.Db.WithContext(ctx).Create(item).Error
	if IsDuplicate(err) {
		return nil
	}
	return err
}

// RemoveVideo 删除成员关系 不存在时删 0 行 同样幂等
func (d *PlaylistDAO) RemoveVideo(ctx context.Context, playlistID, videoID int64) error {
	return d.Db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&models.PlaylistVideo{}).Error
}

// RemoveAllVideos 清空播放列表成员（删除播放列表时调用）
func (d *PlaylistDAO) RemoveAllVideos(ctx context.Context, playlistID int64) error {
	return d.Db.WithContext(ctx).
		Where("playlist_id = ?", playlistID).
		Delete(&models.PlaylistVideo{}).Error
}

// ListVideos 播放列表内的视频 内联所有者 按加入时间正序
// 成员指向已删除视频时 JOIN 不命中 该行自然被过滤
func (d *PlaylistDAO) ListVideos(ctx context.Context, playlistID int64) ([]*models.VideoWithOwner, error) {
	var rows []*models.VideoWithOwner
	err := d.Db.WithContext(ctx).
		Table("playlist_videos pv").
		Select("v.*, "+ownerSelect).
		Joins("INNER JOIN videos v ON pv.video_id = v.id").
		Joins("INNER JOIN users u ON v.owner_id = u.id").
		Where("pv.playlist_id = ?", playlistID).
		Order("pv.created_at ASC").
		Scan(&rows).Error
	return rows, err
}
