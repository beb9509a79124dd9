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

const refreshTokenCookie = "refreshToken"

type Auth struct {
	Config      *config.Config
	UsersDAO    *dao.Users
	UserService service.IUserService
}

func (h *Auth) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret), h.UsersDAO)
	g := r.Group("/auth")

	g.POST("/register", context.Wrap(h.Register))
	g.POST("/login", context.Wrap(h.Login))
	g.POST("/refresh-token", context.Wrap(h.Refresh))

	g.POST("/logout", authorize, context.Wrap(h.Logout))
	g.GET("/me", authorize, context.Wrap(h.Me))
	g.PATCH("/password", authorize, context.Wrap(h.ChangePassword))
	g.PATCH("/update", authorize, context.Wrap(h.UpdateProfile))
	g.PATCH("/avatar", authorize, context.Wrap(h.UpdateAvatar))
	g.PATCH("/cover-image", authorize, context.Wrap(h.UpdateCoverImage))
	g.GET("/channel/:username", authorize, context.Wrap(h.ChannelProfile))
	g.GET("/watch-history", authorize, context.Wrap(h.WatchHistory))
}

// setAuthCookies 令牌双写 Cookie + 响应体均可取用
func (h *Auth) setAuthCookies(c *gin.Context, pair *types.TokenPair) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, pair.AccessToken, h.Config.Jwt.AccessExpire, "/", "", true, true)
	c.SetCookie(refreshTokenCookie, pair.RefreshToken, h.Config.Jwt.RefreshExpire, "/", "", true, true)
}

func (h *Auth) clearAuthCookies(c *gin.Context) {
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", true, true)
	c.SetCookie(refreshTokenCookie, "", -1, "/", "", true, true)
}

// Register 注册 multipart 表单 avatar 必传 coverImage 可选
func (h *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	avatar, err := c.FormFile("avatar")
	if err != nil {
		return response.BadRequest("头像不能为空")
	}
	coverImage, _ := c.FormFile("coverImage")

	user, err := h.UserService.Register(c.Request.Context(), &service.UserRegisterOpt{
		Username:   req.Username,
		Email:      req.Email,
		FullName:   req.FullName,
		Password:   req.Password,
		Avatar:     avatar,
		CoverImage: coverImage,
	})
	if err != nil {
		return err
	}

	user.Password = ""
	response.Created(c, user, "注册成功")
	return nil
}

func (h *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	user, pair, err := h.UserService.Login(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}

	user.Password = ""
	h.setAuthCookies(c, pair)
	response.SuccessMsg(c, types.LoginResponse{User: user, TokenPair: *pair}, "登录成功")
	return nil
}

// Refresh 刷新令牌 优先 Cookie 其次请求体
func (h *Auth) Refresh(c *gin.Context) error {
	token, _ := c.Cookie(refreshTokenCookie)
	if token == "" {
		var req types.RefreshTokenRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			token = req.RefreshToken
		}
	}

	pair, err := h.UserService.Refresh(c.Request.Context(), token)
	if err != nil {
		return err
	}

	h.setAuthCookies(c, pair)
	response.SuccessMsg(c, pair, "令牌已刷新")
	return nil
}

func (h *Auth) Logout(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	if err := h.UserService.Logout(c.Request.Context(), userID); err != nil {
		return err
	}

	h.clearAuthCookies(c)
	response.SuccessMsg(c, nil, "已退出登录")
	return nil
}

// Me 当前登录用户 中间件已注入
func (h *Auth) Me(c *gin.Context) error {
	user, err := context.GetUser(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, user)
	return nil
}

func (h *Auth) ChangePassword(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	if err := h.UserService.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		return err
	}

	response.SuccessMsg(c, nil, "密码修改成功")
	return nil
}

func (h *Auth) UpdateProfile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	user, err := h.UserService.UpdateProfile(c.Request.Context(), userID, req.FullName, req.Email)
	if err != nil {
		return err
	}

	user.Password = ""
	response.SuccessMsg(c, user, "资料更新成功")
	return nil
}

func (h *Auth) UpdateAvatar(c *gin.Context) error {
	return h.replaceImage(c, "avatar")
}

func (h *Auth) UpdateCoverImage(c *gin.Context) error {
	return h.replaceImage(c, "coverImage")
}

func (h *Auth) replaceImage(c *gin.Context, field string) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	header, err := c.FormFile(field)
	if err != nil {
		return response.BadRequest("缺少图片文件")
	}

	switch field {
	case "avatar":
		updated, err := h.UserService.UpdateAvatar(c.Request.Context(), userID, header)
		if err != nil {
			return err
		}
		updated.Password = ""
		response.SuccessMsg(c, updated, "头像更新成功")
	default:
		updated, err := h.UserService.UpdateCoverImage(c.Request.Context(), userID, header)
		if err != nil {
			return err
		}
		updated.Password = ""
		response.SuccessMsg(c, updated, "封面更新成功")
	}
	return nil
}

// ChannelProfile 频道主页 附带当前用户是否已订阅
func (h *Auth) ChannelProfile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	username := c.Param("username")
	if username == "" {
		return response.BadRequest("用户名不能为空")
	}

	profile, err := h.UserService.ChannelProfile(c.Request.Context(), username, userID)
	if err != nil {
		return err
	}

	response.Success(c, profile)
	return nil
}

func (h *Auth) WatchHistory(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	videos, err := h.UserService.WatchHistory(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, videos)
	return nil
}
