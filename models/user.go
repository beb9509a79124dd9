package models

import (
	"time"
)

type User struct {
	ID         int64     `gorm:"column:id;primary_key" json:"id,string"`
	Username   string    `gorm:"column:username;type:varchar(64);not null;uniqueIndex:uk_username" json:"username"`
	Email      string    `gorm:"column:email;type:varchar(128);not null;uniqueIndex:uk_email" json:"email"`
	FullName   string    `gorm:"column:full_name;type:varchar(128);not null;default:''" json:"fullName"`
	Avatar     string    `gorm:"column:avatar;type:varchar(512);not null;default:''" json:"avatar"`
	CoverImage string    `gorm:"column:cover_image;type:varchar(512);not null;default:''" json:"coverImage"`
	Password   string    `gorm:"column:password;type:varchar(128);not null" json:"-"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// OwnerProfile 内容所有者的公开信息投影
type OwnerProfile struct {
	ID       int64  `gorm:"column:owner_id" json:"id,string"`
	Username string `gorm:"column:owner_username" json:"username"`
	FullName string `gorm:"column:owner_full_name" json:"fullName"`
	Avatar   string `gorm:"column:owner_avatar" json:"avatar"`
}
