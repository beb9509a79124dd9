package middleware

import (
	"errors"
	"net/http"
	"strings"

	"playtube/dao"
	"playtube/pkg/context"
	"playtube/pkg/jwt"
	"playtube/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const AccessTokenCookie = "accessToken"

// extractToken 先取 Cookie 再取 Authorization 头
func extractToken(c *gin.Context) string {
	if token, err := c.Cookie(AccessTokenCookie); err == nil && token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func Auth(secret []byte, users *dao.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少访问令牌")
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TypeAccess, token)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "访问令牌无效或已过期")
			return
		}

		// 令牌有效但账号可能已注销 每次都回源确认
		user, err := users.FindById(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Abort(c, http.StatusUnauthorized, "用户不存在")
				return
			}
			response.Abort(c, http.StatusInternalServerError, err.Error())
			return
		}
		user.Password = ""

		c.Set(context.CtxUserID, user.ID)
		c.Set(context.CtxUser, user)

		c.Next()
	}
}
