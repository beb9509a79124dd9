package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构 success = statusCode < 400
type Response struct {
	Code    int         `json:"statusCode"`
	Data    interface{} `json:"data"`
	Msg     string      `json:"message"`
	Success bool        `json:"success"`
}

// failResponse 失败响应固定携带 errors 数组 成功响应没有该字段
type failResponse struct {
	Response
	Errors []string `json:"errors"`
}

func New(code int, data interface{}, msg string) Response {
	return Response{
		Code:    code,
		Data:    data,
		Msg:     msg,
		Success: code < http.StatusBadRequest,
	}
}

// Success 200 响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, New(http.StatusOK, data, "success"))
}

// SuccessMsg 带提示信息的成功响应
func SuccessMsg(c *gin.Context, data interface{}, msg string) {
	c.JSON(http.StatusOK, New(http.StatusOK, data, msg))
}

// Created 201 响应
func Created(c *gin.Context, data interface{}, msg string) {
	c.JSON(http.StatusCreated, New(http.StatusCreated, data, msg))
}

// Fail 错误响应 data 固定为 null
func Fail(c *gin.Context, code int, msg string) {
	c.JSON(code, failResponse{
		Response: Response{
			Code:    code,
			Data:    nil,
			Msg:     msg,
			Success: false,
		},
		Errors: []string{},
	})
}
