package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"sync"
	"testing"
	"time"

	"playtube/config"
	"playtube/dao"
	"playtube/dao/cache"
	"playtube/models"
	"playtube/pkg/encrypt"
	"playtube/pkg/response"
	"playtube/pkg/snowflake"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testDeps struct {
	db *gorm.DB
}

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

func seedUser(t *testing.T, db *gorm.DB, username, password string) *models.User {
	t.Helper()

	user := &models.User{
		ID:        snowflake.GenID(),
		Username:  username,
		Email:     username + "@example.com",
		FullName:  username,
		Password:  encrypt.HashPassword(password),
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

// fakeMedia 替代 OSS 记录上传与删除的 URL
type fakeMedia struct {
	mu       sync.Mutex
	uploaded []string
	deleted  []string
	next     int
}

var _ IMediaService = (*fakeMedia)(nil)

func (f *fakeMedia) upload(folder string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	url := fmt.Sprintf("https://media.example.com/%s/%d", folder, f.next)
	f.uploaded = append(f.uploaded, url)
	return url, nil
}

func (f *fakeMedia) UploadImage(_ context.Context, _ *multipart.FileHeader, folder string) (string, error) {
	return f.upload(folder)
}

func (f *fakeMedia) UploadVideo(_ context.Context, _ *multipart.FileHeader, folder string) (string, error) {
	return f.upload(folder)
}

func (f *fakeMedia) Delete(_ context.Context, fileURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, fileURL)
	return nil
}

// fakeTokenStore 内存版刷新令牌存储 语义与 redis 实现一致
type fakeTokenStore struct {
	mu     sync.Mutex
	tokens map[int64]string
}

var _ ITokenStore = (*fakeTokenStore)(nil)

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[int64]string)}
}

func (f *fakeTokenStore) Save(_ context.Context, userID int64, token string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[userID] = token
	return nil
}

func (f *fakeTokenStore) Get(_ context.Context, userID int64) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	token, ok := f.tokens[userID]
	if !ok {
		return "", cache.ErrTokenNotFound
	}
	return token, nil
}

func (f *fakeTokenStore) Delete(_ context.Context, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tokens, userID)
	return nil
}

func fileHeader(name string) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name}
}

func newUserService(db *gorm.DB, media IMediaService, store ITokenStore) *UserService {
	return &UserService{
		UsersRepo:       dao.NewUsers(db),
		SubscriptionDAO: dao.NewSubscriptionDAO(db),
		HistoryDAO:      dao.NewWatchHistoryDAO(db),
		Media:           media,
		TokenStore:      store,
		Jwt: &config.Jwt{
			Secret:        "test-secret",
			AccessExpire:  900,
			RefreshExpire: 3600,
		},
	}
}

func isBizError(err error, code int) bool {
	var be *response.BizError
	return errors.As(err, &be) && be.Code == code
}
