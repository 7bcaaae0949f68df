package handler

import (
	"net/http"

	"Fanhub/config"
	"Fanhub/middleware"
	"Fanhub/pkg/context"
	"Fanhub/pkg/response"
	"Fanhub/service"
	"Fanhub/types"

	"github.com/gin-gonic/gin"
)

type Library struct {
	Config         *config.Config
	LibraryService service.ILibraryService
}

func (h *Library) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	g := r.Group("/v1/library")
	g.GET("", authorize, context.Wrap(h.Get))
}

// Get 我的收藏 + 我的订阅。收藏里被锁住的帖子照常返回，只是不下发媒体地址
func (h *Library) Get(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthenticated("未登录")
	}

	var req types.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}
	limit, offset := req.Normalize()

	resp, err := h.LibraryService.Get(c.Request.Context(), userID, limit, offset)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}
