package context

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"playtube/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func perform(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/t", handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestWrap_BizErrorKeepsCode(t *testing.T) {
	w := perform(Wrap(func(c *gin.Context) error {
		return response.NotFound("视频不存在")
	}))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"statusCode":404`)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestWrap_PlainErrorIs500(t *testing.T) {
	w := perform(Wrap(func(c *gin.Context) error {
		return errors.New("boom")
	}))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWrap_NoDoubleWrite(t *testing.T) {
	// handler 已写响应时错误不再覆盖
	w := perform(Wrap(func(c *gin.Context) error {
		response.Success(c, gin.H{"ok": true})
		return errors.New("late failure")
	}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestGetUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := GetUserID(c)
	assert.Error(t, err)

	c.Set(CtxUserID, int64(42))
	id, err := GetUserID(c)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)
}
