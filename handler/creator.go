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

type Creator struct {
	Config         *config.Config
	CreatorService service.ICreatorService
	PostService    service.IPostService
}

func (h *Creator) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	g := r.Group("/v1/creator")
	g.POST("/apply", authorize, context.Wrap(h.BecomeCreator))
	g.PUT("/me", authorize, context.Wrap(h.UpdateCreator))
	g.GET("/discover", optional, context.Wrap(h.Discover))
	g.GET("/:creator_id", optional, context.Wrap(h.GetCreator))
}

// BecomeCreator 开通创作者主页
func (h *Creator) BecomeCreator(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthenticated("未登录")
	}

	var req types.BecomeCreatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	creatorID, err := h.CreatorService.BecomeCreator(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"creator_id": creatorID})
	return nil
}

// UpdateCreator 创作者资料更新
func (h *Creator) UpdateCreator(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthenticated("未登录")
	}

	var req types.UpdateCreatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := h.CreatorService.UpdateCreator(c.Request.Context(), userID, &req); err != nil {
		return err
	}

	response.Success(c, gin.H{"updated": true})
	return nil
}

// Discover 创作者广场
func (h *Creator) Discover(c *gin.Context) error {
	var req types.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}
	limit, offset := req.Normalize()

	resp, err := h.CreatorService.Discover(c.Request.Context(), context.GetViewerID(c), limit, offset)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}

// GetCreator 创作者主页：资料 + 帖子（逐帖过可见性判定）
func (h *Creator) GetCreator(c *gin.Context) error {
	creatorID, err := paramID(c, "creator_id")
	if err != nil {
		return err
	}

	viewerID := context.GetViewerID(c)
	creator, err := h.CreatorService.GetCreator(c.Request.Context(), viewerID, creatorID)
	if err != nil {
		return err
	}

	var req types.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}
	limit, offset := req.Normalize()

	posts, err := h.PostService.CreatorPosts(c.Request.Context(), viewerID, creatorID, limit, offset)
	if err != nil {
		return err
	}

	response.Success(c, types.CreatorPageResponse{
		Creator: creator,
		Posts:   posts,
	})
	return nil
}
