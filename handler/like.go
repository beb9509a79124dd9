package handler

import (
	"net/http"

	"playtube/config"
	"playtube/dao"
	"playtube/middleware"
	"playtube/models"
	"playtube/pkg/context"
	"playtube/pkg/response"
	"playtube/service"
	"playtube/types"

	"github.com/gin-gonic/gin"
)

type Like struct {
	Config      *config.Config
	UsersDAO    *dao.Users
	LikeService service.ILikeService
}

func (h *Like) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.UsersDAO)
	g := r.Group("/likes", authorize)

	g.POST("/toggle/video/:id", context.Wrap(h.toggle(models.LikeTargetVideo)))
	g.POST("/toggle/comment/:id", context.Wrap(h.toggle(models.LikeTargetComment)))
	g.POST("/toggle/tweet/:id", context.Wrap(h.toggle(models.LikeTargetTweet)))
	g.GET("/videos", context.Wrap(h.LikedVideos))
	g.GET("/tweets", context.Wrap(h.LikedTweets))
}

// toggle 三种目标共用一套开关语义 只差目标类型
func (h *Like) toggle(targetType string) func(*gin.Context) error {
	return func(c *gin.Context) error {
		userID, err := context.GetUserID(c)
		if err != nil {
			return response.NewError(http.StatusInternalServerError, err.Error())
		}

		targetID, err := parseID(c, "id")
		if err != nil {
			return err
		}

		state, err := h.LikeService.Toggle(c.Request.Context(), userID, targetType, targetID)
		if err != nil {
			return err
		}

		response.Success(c, types.ToggleResult{State: state})
		return nil
	}
}

func (h *Like) LikedVideos(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	videos, err := h.LikeService.LikedVideos(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, videos)
	return nil
}

func (h *Like) LikedTweets(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	tweets, err := h.LikeService.LikedTweets(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, tweets)
	return nil
}
