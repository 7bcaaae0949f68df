package handler

import (
	"Fanhub/config"
	"Fanhub/middleware"
	"Fanhub/pkg/context"
	"Fanhub/pkg/response"
	"Fanhub/service"

	"github.com/gin-gonic/gin"
)

type Subscription struct {
	Config              *config.Config
	SubscriptionService service.ISubscriptionService
}

func (h *Subscription) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	g := r.Group("/v1/subscription")
	g.POST("/:creator_id/toggle", authorize, context.Wrap(h.Toggle))
	g.GET("/:creator_id/status", authorize, context.Wrap(h.Status))
}

// Toggle 订阅/退订翻转
func (h *Subscription) Toggle(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthenticated("未登录")
	}

	creatorID, err := paramID(c, "creator_id")
	if err != nil {
		return err
	}

	subscribed, err := h.SubscriptionService.Toggle(c.Request.Context(), userID, creatorID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"subscribed": subscribed})
	return nil
}

// Status 查询当前订阅状态
func (h *Subscription) Status(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthenticated("未登录")
	}

	creatorID, err := paramID(c, "creator_id")
	if err != nil {
		return err
	}

	subscribed, err := h.SubscriptionService.IsSubscribed(c.Request.Context(), userID, creatorID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"subscribed": subscribed})
	return nil
}
