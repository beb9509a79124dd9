package handler

import (
	"net/http"

	"playtube/config"
	"playtube/dao"
	"playtube/middleware"
	"playtube/pkg/context"
	"playtube/pkg/response"
	"playtube/service"

	"github.com/gin-gonic/gin"
)

type Dashboard struct {
	Config           *config.Config
	UsersDAO         *dao.Users
	DashboardService service.IDashboardService
}

func (h *Dashboard) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.UsersDAO)
	g := r.Group("/dashboard", authorize)

	g.GET("/stats", context.Wrap(h.Stats))
	g.GET("/videos", context.Wrap(h.Videos))
}

// Stats 当前用户的频道统计
func (h *Dashboard) Stats(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	stats, err := h.DashboardService.Stats(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, stats)
	return nil
}

// Videos 当前用户的全部视频 含未发布
func (h *Dashboard) Videos(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	videos, err := h.DashboardService.ChannelVideos(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, videos)
	return nil
}
