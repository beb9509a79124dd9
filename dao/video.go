package dao

import (
	"context"
	"strings"

	"playtube/models"

	"gorm.io/gorm"
)

// 允许作为排序键的字段 调用方传入的 sortBy 必须命中这里
var videoSortColumns = map[string]string{
	"createdAt": "v.created_at",
	"views":     "v.views",
	"duration":  "v.duration",
	"title":     "v.title",
}

// VideoSortColumn 排序键映射 未命中返回 false
func VideoSortColumn(sortBy string) (string, bool) {
	col, ok := videoSortColumns[sortBy]
	return col, ok
}

type ListVideosOpt struct {
	Query    string // 标题/描述 子串匹配 不区分大小写
	OwnerID  int64  // 0 表示不过滤
	SortCol  string // 已通过 VideoSortColumn 校验的列名
	SortDesc bool
	Offset   int
	Limit    int
}

type VideoDAO struct {
	Repo[models.Video]
}

func NewVideoDAO(db *gorm.DB) *VideoDAO {
	return &VideoDAO{Repo: NewRepo[models.Video](db)}
}

const ownerSelect = "u.username AS owner_username, u.full_name AS owner_full_name, u.avatar AS owner_avatar"

func (d *VideoDAO) listQuery(ctx context.Context, opt ListVideosOpt) *gorm.DB {
	q := d.Db.WithContext(ctx).
		Table("videos v").
		Where("v.is_published = ?", true)

	if opt.OwnerID > 0 {
		q = q.Where("v.owner_id = ?", opt.OwnerID)
	}
	if opt.Query != "" {
		pattern := "%" + strings.ToLower(opt.Query) + "%"
		q = q.Where("(LOWER(v.title) LIKE ? OR LOWER(v.description) LIKE ?)", pattern, pattern)
	}
	return q
}

// List 联表分页查询已发布视频 内联所有者公开信息 返回当前页与总数
func (d *VideoDAO) List(ctx context.Context, opt ListVideosOpt) ([]*models.VideoWithOwner, int64, error) {
	var total int64
	// 总数也要走 INNER JOIN 所有者缺失的行对调用方不可见
	err := d.listQuery(ctx, opt).
		Joins("INNER JOIN users u ON v.owner_id = u.id").
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	order := opt.SortCol
	if opt.SortDesc {
		order += " DESC"
	} else {
		order += " ASC"
	}

	var rows []*models.VideoWithOwner
	err = d.listQuery(ctx, opt).
		Select("v.*, " + ownerSelect).
		Joins("INNER JOIN users u ON v.owner_id = u.id").
		Order(order).
		Offset(opt.Offset).
		Limit(opt.Limit).
		Scan(&rows).Error

	return rows, total, err
}

// GetPublishedWithOwner 单个已发布视频 + 所有者
func (d *VideoDAO) GetPublishedWithOwner(ctx context.Context, videoID int64) (*models.VideoWithOwner, error) {
	var row models.VideoWithOwner
	err := d.Db.WithContext(ctx).
		Table("videos v").
		Select("v.*, "+ownerSelect).
		Joins("INNER JOIN users u ON v.owner_id = u.id").
		Where("v.id = ? AND v.is_published = ?", videoID, true).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// FindAllByOwner 频道全部视频（含未发布 供频道后台使用）
func (d *VideoDAO) FindAllByOwner(ctx context.Context, ownerID int64) ([]*models.Video, error) {
	var videos []*models.Video
	err := d.Db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&videos).Error
	return videos, err
}

// StatsByOwner 视频数与播放量总和 没有视频时两项都为 0
func (d *VideoDAO) StatsByOwner(ctx context.Context, ownerID int64) (totalVideos int64, totalViews int64, err error) {
	var row struct {
		TotalVideos int64 `gorm:"column:total_videos"`
		TotalViews  int64 `gorm:"column:total_views"`
	}
	err = d.Db.WithContext(ctx).
		Model(&models.Video{}).
		Select("COUNT(*) AS total_videos, COALESCE(SUM(views), 0) AS total_views").
		Where("owner_id = ?", ownerID).
		Scan(&row).Error
	return row.TotalVideos, row.TotalViews, err
}
