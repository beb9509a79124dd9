package handler

import (
	"playtube/pkg/context"
	"playtube/pkg/response"

	"github.com/gin-gonic/gin"
)

type Health struct{}

func (h *Health) RegisterRouter(r gin.IRouter) {
	r.GET("/health", context.Wrap(h.Check))
}

// Check 存活探针 不鉴权
func (h *Health) Check(c *gin.Context) error {
	response.SuccessMsg(c, gin.H{"status": "ok"}, "service is healthy")
	return nil
}
