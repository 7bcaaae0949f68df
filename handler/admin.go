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

// Admin 管理端接口，role=admin 才放行
type Admin struct {
	Config       *config.Config
	AdminService service.IAdminService
}

func (h *Admin) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	g := r.Group("/v1/admin", authorize, middleware.RequireAdmin())
	g.GET("/stats", context.Wrap(h.Stats))
	g.POST("/creator/:creator_id/verify", context.Wrap(h.SetVerified))
	g.POST("/creator/:creator_id/reconcile", context.Wrap(h.ReconcileCounters))
}

// Stats 平台概览统计
func (h *Admin) Stats(c *gin.Context) error {
	stats, err := h.AdminService.Stats(c.Request.Context())
	if err != nil {
		return err
	}

	response.Success(c, stats)
	return nil
}

// ReconcileCounters 用真计数校准创作者的订阅数、帖子数缓存
func (h *Admin) ReconcileCounters(c *gin.Context) error {
	creatorID, err := paramID(c, "creator_id")
	if err != nil {
		return err
	}

	result, err := h.AdminService.ReconcileCounters(c.Request.Context(), creatorID)
	if err != nil {
		return err
	}

	response.Success(c, result)
	return nil
}

// SetVerified 给创作者加/去认证标
func (h *Admin) SetVerified(c *gin.Context) error {
	creatorID, err := paramID(c, "creator_id")
	if err != nil {
		return err
	}

	var req types.SetVerifiedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := h.AdminService.SetVerified(c.Request.Context(), creatorID, req.Verified); err != nil {
		return err
	}

	response.Success(c, gin.H{"verified": req.Verified})
	return nil
}
