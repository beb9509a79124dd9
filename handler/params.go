package handler

import (
	"strconv"

	"playtube/pkg/response"

	"github.com/gin-gonic/gin"
)

// parseID 路径参数转 int64 非法值统一 400
func parseID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, response.BadRequest("非法的 " + name)
	}
	return id, nil
}
