package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrTokenNotFound = errors.New("refresh token 不存在")

// TokenStorage 刷新令牌存储 每个用户只有一个 key
// 签发新令牌直接覆盖旧值 旧令牌由此自动失效
type TokenStorage struct {
	redis *redis.Client
}

func NewTokenStorage(redis *redis.Client) *TokenStorage {
	return &TokenStorage{redis: redis}
}

func (s *TokenStorage) key(userID int64) string {
	return fmt.Sprintf("auth:refresh_token:%d", userID)
}

// Save 保存刷新令牌 过期时间与令牌本身一致
func (s *TokenStorage) Save(ctx context.Context, userID int64, token string, expire time.Duration) error {
	return s.redis.Set(ctx, s.key(userID), token, expire).Err()
}

// Get 读取当前有效的刷新令牌
func (s *TokenStorage) Get(ctx context.Context, userID int64) (string, error) {
	val, err := s.redis.Get(ctx, s.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	return val, err
}

// Delete 登出时删除
func (s *TokenStorage) Delete(ctx context.Context, userID int64) error {
	return s.redis.Del(ctx, s.key(userID)).Err()
}
