package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"playtube/models"
	ctxutil "playtube/pkg/context"
	"playtube/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// fakeLikeService 记录调用参数 返回预设结果
type fakeLikeService struct {
	state      bool
	err        error
	targetType string
	targetID   int64
}

func (f *fakeLikeService) Toggle(_ context.Context, _ int64, targetType string, targetID int64) (bool, error) {
	f.targetType = targetType
	f.targetID = targetID
	return f.state, f.err
}

func (f *fakeLikeService) LikedVideos(_ context.Context, _ int64) ([]*models.VideoWithOwner, error) {
	return []*models.VideoWithOwner{}, nil
}

func (f *fakeLikeService) LikedTweets(_ context.Context, _ int64) ([]*models.TweetWithOwner, error) {
	return []*models.TweetWithOwner{}, nil
}

func likeRouter(svc *fakeLikeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &Like{LikeService: svc}

	router := gin.New()
	// 测试里直接注入用户 跳过认证中间件
	router.Use(func(c *gin.Context) {
		c.Set(ctxutil.CtxUserID, int64(42))
	})
	g := router.Group("/likes")
	g.POST("/toggle/video/:id", ctxutil.Wrap(h.toggle(models.LikeTargetVideo)))
	g.POST("/toggle/comment/:id", ctxutil.Wrap(h.toggle(models.LikeTargetComment)))
	g.GET("/videos", ctxutil.Wrap(h.LikedVideos))
	return router
}

func TestLikeHandler_Toggle(t *testing.T) {
	svc := &fakeLikeService{state: true}
	router := likeRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/likes/toggle/video/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"state":true`)
	assert.Equal(t, models.LikeTargetVideo, svc.targetType)
	assert.Equal(t, int64(7), svc.targetID)
}

func TestLikeHandler_Toggle_BadID(t *testing.T) {
	router := likeRouter(&fakeLikeService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/likes/toggle/video/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLikeHandler_Toggle_ServiceError(t *testing.T) {
	svc := &fakeLikeService{err: response.NotFound("点赞目标不存在")}
	router := likeRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/likes/toggle/comment/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestLikeHandler_LikedVideos_EmptyArray(t *testing.T) {
	router := likeRouter(&fakeLikeService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/likes/videos", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}
