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

// QuickReply 私信快捷回复模板，仅创作者可管理
type QuickReply struct {
	Config            *config.Config
	QuickReplyService service.IQuickReplyService
}

func (h *QuickReply) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	g := r.Group("/v1/quick-reply", authorize)
	g.POST("", context.Wrap(h.Create))
	g.GET("", context.Wrap(h.List))
	g.PUT("/:id", context.Wrap(h.Update))
	g.DELETE("/:id", context.Wrap(h.Delete))
}

func (h *QuickReply) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthenticated("未登录")
	}

	var req types.CreateQuickReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	id, err := h.QuickReplyService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"id": id})
	return nil
}

func (h *QuickReply) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthenticated("未登录")
	}

	list, err := h.QuickReplyService.List(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, list)
	return nil
}

func (h *QuickReply) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthenticated("未登录")
	}

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req types.UpdateQuickReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := h.QuickReplyService.Update(c.Request.Context(), userID, id, &req); err != nil {
		return err
	}

	response.Success(c, gin.H{"updated": true})
	return nil
}

func (h *QuickReply) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthenticated("未登录")
	}

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.QuickReplyService.Delete(c.Request.Context(), userID, id); err != nil {
		return err
	}

	response.Success(c, gin.H{"deleted": true})
	return nil
}
