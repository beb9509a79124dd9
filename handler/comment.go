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

type Comment struct {
	Config         *config.Config
	UsersDAO       *dao.Users
	CommentService service.ICommentService
}

func (h *Comment) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.UsersDAO)
	g := r.Group("/comments", authorize)

	g.GET("/:videoId", context.Wrap(h.List))
	g.POST("/:videoId", context.Wrap(h.Create))
	g.PATCH("/channel/:commentId", context.Wrap(h.Update))
	g.DELETE("/channel/:commentId", context.Wrap(h.Delete))
}

func (h *Comment) List(c *gin.Context) error {
	videoID, err := parseID(c, "videoId")
	if err != nil {
		return err
	}

	var page types.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	result, err := h.CommentService.ListByVideo(c.Request.Context(), videoID, &page)
	if err != nil {
		return err
	}

	response.Success(c, result)
	return nil
}

func (h *Comment) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	videoID, err := parseID(c, "videoId")
	if err != nil {
		return err
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	comment, err := h.CommentService.Create(c.Request.Context(), userID, videoID, req.Content)
	if err != nil {
		return err
	}

	response.Created(c, comment, "评论发表成功")
	return nil
}

func (h *Comment) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	commentID, err := parseID(c, "commentId")
	if err != nil {
		return err
	}

	var req types.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	comment, err := h.CommentService.Update(c.Request.Context(), userID, commentID, req.Content)
	if err != nil {
		return err
	}

	response.SuccessMsg(c, comment, "评论更新成功")
	return nil
}

func (h *Comment) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	commentID, err := parseID(c, "commentId")
	if err != nil {
		return err
	}

	if err := h.CommentService.Delete(c.Request.Context(), userID, commentID); err != nil {
		return err
	}

	response.SuccessMsg(c, nil, "评论删除成功")
	return nil
}
