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

type Video struct {
	Config       *config.Config
	UsersDAO     *dao.Users
	VideoService service.IVideoService
}

func (h *Video) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.UsersDAO)
	g := r.Group("/videos", authorize)

	g.GET("", context.Wrap(h.List))
	g.POST("", context.Wrap(h.Publish))
	g.GET("/:id", context.Wrap(h.Get))
	g.PATCH("/:id", context.Wrap(h.UpdateDetails))
	g.PATCH("/:id/thumbnail", context.Wrap(h.UpdateThumbnail))
	g.PATCH("/:id/view", context.Wrap(h.IncrementView))
	g.DELETE("/:id", context.Wrap(h.Delete))
	g.PATCH("/toggle/publish/:id", context.Wrap(h.TogglePublish))
}

func (h *Video) List(c *gin.Context) error {
	var req types.ListVideosRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	result, err := h.VideoService.List(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Success(c, result)
	return nil
}

// Publish 发布视频 multipart videoFile 必传 thumbnail 可选
func (h *Video) Publish(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.PublishVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	videoFile, err := c.FormFile("videoFile")
	if err != nil {
		return response.BadRequest("视频文件不能为空")
	}
	thumbnail, _ := c.FormFile("thumbnail")

	video, err := h.VideoService.Publish(c.Request.Context(), userID, &req, videoFile, thumbnail)
	if err != nil {
		return err
	}

	response.Created(c, video, "视频发布成功")
	return nil
}

func (h *Video) Get(c *gin.Context) error {
	videoID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	video, err := h.VideoService.Get(c.Request.Context(), videoID)
	if err != nil {
		return err
	}

	response.Success(c, video)
	return nil
}

func (h *Video) UpdateDetails(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	videoID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req types.UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	video, err := h.VideoService.UpdateDetails(c.Request.Context(), userID, videoID, &req)
	if err != nil {
		return err
	}

	response.SuccessMsg(c, video, "视频信息更新成功")
	return nil
}

func (h *Video) UpdateThumbnail(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	videoID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	header, err := c.FormFile("thumbnail")
	if err != nil {
		return response.BadRequest("缺少封面文件")
	}

	video, err := h.VideoService.UpdateThumbnail(c.Request.Context(), userID, videoID, header)
	if err != nil {
		return err
	}

	response.SuccessMsg(c, video, "封面更新成功")
	return nil
}

func (h *Video) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	videoID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.VideoService.Delete(c.Request.Context(), userID, videoID); err != nil {
		return err
	}

	response.SuccessMsg(c, nil, "视频删除成功")
	return nil
}

func (h *Video) TogglePublish(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	videoID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	video, err := h.VideoService.TogglePublish(c.Request.Context(), userID, videoID)
	if err != nil {
		return err
	}

	response.SuccessMsg(c, video, "发布状态已切换")
	return nil
}

// IncrementView 播放计数 同一用户重复播放不重复计数
func (h *Video) IncrementView(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	videoID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	counted, err := h.VideoService.IncrementView(c.Request.Context(), userID, videoID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"counted": counted})
	return nil
}
