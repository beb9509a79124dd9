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

type Playlist struct {
	Config          *config.Config
	UsersDAO        *dao.Users
	PlaylistService service.IPlaylistService
}

func (h *Playlist) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.UsersDAO)
	g := r.Group("/playlists", authorize)

	g.POST("", context.Wrap(h.Create))
	g.GET("/:playlistId", context.Wrap(h.Get))
	g.PATCH("/:playlistId", context.Wrap(h.Update))
	g.DELETE("/:playlistId", context.Wrap(h.Delete))
	g.GET("/user/:userId", context.Wrap(h.UserPlaylists))
	g.PATCH("/add/:videoId/:playlistId", context.Wrap(h.AddVideo))
	g.PATCH("/remove/:videoId/:playlistId", context.Wrap(h.RemoveVideo))
}

func (h *Playlist) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	playlist, err := h.PlaylistService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}

	response.Created(c, playlist, "播放列表创建成功")
	return nil
}

func (h *Playlist) Get(c *gin.Context) error {
	playlistID, err := parseID(c, "playlistId")
	if err != nil {
		return err
	}

	detail, err := h.PlaylistService.Get(c.Request.Context(), playlistID)
	if err != nil {
		return err
	}

	response.Success(c, detail)
	return nil
}

func (h *Playlist) UserPlaylists(c *gin.Context) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}

	lists, err := h.PlaylistService.UserPlaylists(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, lists)
	return nil
}

func (h *Playlist) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	playlistID, err := parseID(c, "playlistId")
	if err != nil {
		return err
	}

	var req types.UpdatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	playlist, err := h.PlaylistService.Update(c.Request.Context(), userID, playlistID, &req)
	if err != nil {
		return err
	}

	response.SuccessMsg(c, playlist, "播放列表更新成功")
	return nil
}

func (h *Playlist) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	playlistID, err := parseID(c, "playlistId")
	if err != nil {
		return err
	}

	if err := h.PlaylistService.Delete(c.Request.Context(), userID, playlistID); err != nil {
		return err
	}

	response.SuccessMsg(c, nil, "播放列表删除成功")
	return nil
}

func (h *Playlist) AddVideo(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	videoID, err := parseID(c, "videoId")
	if err != nil {
		return err
	}
	playlistID, err := parseID(c, "playlistId")
	if err != nil {
		return err
	}

	if err := h.PlaylistService.AddVideo(c.Request.Context(), userID, playlistID, videoID); err != nil {
		return err
	}

	response.SuccessMsg(c, nil, "视频已加入播放列表")
	return nil
}

func (h *Playlist) RemoveVideo(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	videoID, err := parseID(c, "videoId")
	if err != nil {
		return err
	}
	playlistID, err := parseID(c, "playlistId")
	if err != nil {
		return err
	}

	if err := h.PlaylistService.RemoveVideo(c.Request.Context(), userID, playlistID, videoID); err != nil {
		return err
	}

	response.SuccessMsg(c, nil, "视频已移出播放列表")
	return nil
}
