package dao

import (
	"context"

	"playtube/models"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// FindByUsername 用户名查询
func (u *Users) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "username = ?", username)
}

// FindByUsernameOrEmail 用户名或邮箱查询（登录入口）
func (u *Users) FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "username = ? OR email = ?", username, email)
}

// IsCredentialTaken 用户名或邮箱是否已被占用
func (u *Users) IsCredentialTaken(ctx context.Context, username, email string) (bool, error) {
	return u.Repo.IsExist(ctx, "username = ? OR email = ?", username, email)
}
