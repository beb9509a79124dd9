package models

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// 所有表迁移进同一个库 索引名在库内必须唯一
func TestMigrateAllModels(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&User{},
		&Video{},
		&Comment{},
		&Tweet{},
		&Playlist{},
		&PlaylistVideo{},
		&Like{},
		&Subscription{},
		&WatchHistory{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
}
