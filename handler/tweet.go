package handler

import (
	"net/http"

	"playtube/config"
	"playtube/dao"
	"playtube/middleware"
	"playtube/pkg/context"
	"playtube/pkg/response"
	"playtube/service"
	"playtube/types"

	"github.com/gin-gonic/gin"
)

type Tweet struct {
	Config       *config.Config
	UsersDAO     *dao.Users
	TweetService service.ITweetService
}

func (h *Tweet) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.UsersDAO)
	g := r.Group("/tweets", authorize)

	g.POST("", context.Wrap(h.Create))
	g.GET("/user/:userId", context.Wrap(h.UserTweets))
	g.PATCH("/:tweetId", context.Wrap(h.Update))
	g.DELETE("/:tweetId", context.Wrap(h.Delete))
}

func (h *Tweet) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.CreateTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	tweet, err := h.TweetService.Create(c.Request.Context(), userID, req.Content)
	if err != nil {
		return err
	}

	response.Created(c, tweet, "动态发布成功")
	return nil
}

func (h *Tweet) UserTweets(c *gin.Context) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}

	tweets, err := h.TweetService.UserTweets(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, tweets)
	return nil
}

func (h *Tweet) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	tweetID, err := parseID(c, "tweetId")
	if err != nil {
		return err
	}

	var req types.UpdateTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	tweet, err := h.TweetService.Update(c.Request.Context(), userID, tweetID, req.Content)
	if err != nil {
		return err
	}

	response.SuccessMsg(c, tweet, "动态更新成功")
	return nil
}

func (h *Tweet) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	tweetID, err := parseID(c, "tweetId")
	if err != nil {
		return err
	}

	if err := h.TweetService.Delete(c.Request.Context(), userID, tweetID); err != nil {
		return err
	}

	response.SuccessMsg(c, nil, "动态删除成功")
	return nil
}
