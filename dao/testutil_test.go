package dao

import (
	"testing"
	"time"

	"playtube/models"
	"playtube/pkg/snowflake"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Video{},
		&models.Comment{},
		&models.Tweet{},
		&models.Playlist{},
		&models.PlaylistVideo{},
		&models.Like{},
		&models.Subscription{},
		&models.WatchHistory{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		ID:        snowflake.GenID(),
		Username:  username,
		Email:     username + "@example.com",
		FullName:  username,
		Password:  "hashed",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user
}

func seedVideo(t *testing.T, db *gorm.DB, ownerID int64, title string, published bool) *models.Video {
	t.Helper()

	video := &models.Video{
		ID:          snowflake.GenID(),
		OwnerID:     ownerID,
		Title:       title,
		Description: "desc of " + title,
		VideoFile:   "https://media.example.com/video/" + title + ".mp4",
		IsPublished: published,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := db.Create(video).Error; err != nil {
		t.Fatalf("seed video %s: %v", title, err)
	}
	return video
}
