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

type Subscription struct {
	Config              *config.Config
	UsersDAO            *dao.Users
	SubscriptionService service.ISubscriptionService
}

func (h *Subscription) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.UsersDAO)
	g := r.Group("/subscriptions", authorize)

	g.PATCH("/channel/:channelId", context.Wrap(h.Toggle))
	g.GET("/channel/:channelId", context.Wrap(h.ChannelSubscribers))
	g.GET("/user/:subscriberId", context.Wrap(h.SubscribedChannels))
}

func (h *Subscription) Toggle(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	channelID, err := parseID(c, "channelId")
	if err != nil {
		return err
	}

	state, err := h.SubscriptionService.Toggle(c.Request.Context(), userID, channelID)
	if err != nil {
		return err
	}

	response.Success(c, types.ToggleResult{State: state})
	return nil
}

// ChannelSubscribers 某频道的订阅者列表
func (h *Subscription) ChannelSubscribers(c *gin.Context) error {
	channelID, err := parseID(c, "channelId")
	if err != nil {
		return err
	}

	subscribers, err := h.SubscriptionService.ChannelSubscribers(c.Request.Context(), channelID)
	if err != nil {
		return err
	}

	response.Success(c, subscribers)
	return nil
}

// SubscribedChannels 某用户订阅的频道列表
func (h *Subscription) SubscribedChannels(c *gin.Context) error {
	subscriberID, err := parseID(c, "subscriberId")
	if err != nil {
		return err
	}

	channels, err := h.SubscriptionService.SubscribedChannels(c.Request.Context(), subscriberID)
	if err != nil {
		return err
	}

	response.Success(c, channels)
	return nil
}
