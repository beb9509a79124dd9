package context

import (
	"errors"
	"net/http"

	"playtube/models"
	"playtube/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID = "user_id"
	CtxUser   = "user"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				response.Fail(c, be.Code, be.Msg)
				return
			}
			response.Fail(c, http.StatusInternalServerError, err.Error())
		}
	}
}

func GetUserID(c *gin.Context) (int64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id 不存在")
	}

	uid, ok := v.(int64)
	if !ok {
		return 0, errors.New("user_id 类型错误")
	}

	return uid, nil
}

// GetUser 获取认证中间件写入的当前用户
func GetUser(c *gin.Context) (*models.User, error) {
	v, ok := c.Get(CtxUser)
	if !ok {
		return nil, errors.New("user 不存在")
	}

	user, ok := v.(*models.User)
	if !ok {
		return nil, errors.New("user 类型错误")
	}

	return user, nil
}
