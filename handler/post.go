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

type Post struct {
	Config      *config.Config
	PostService service.IPostService
	LikeService service.ILikeService
	SaveService service.ISaveService
}

func (h *Post) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	g := r.Group("/v1/post")
	g.POST("/create", authorize, context.Wrap(h.CreatePost))
	g.POST("/suggest-tags", authorize, context.Wrap(h.SuggestTags))
	g.GET("/feed", optional, context.Wrap(h.HomeFeed))
	g.POST("/:post_id/like", authorize, context.Wrap(h.ToggleLike))
	g.POST("/:post_id/save", authorize, context.Wrap(h.ToggleSave))
}

// CreatePost 发帖
func (h *Post) CreatePost(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthenticated("未登录")
	}

	var req types.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	postID, err := h.PostService.CreatePost(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}

	response.Success(c, types.CreatePostResponse{PostID: postID})
	return nil
}

// SuggestTags 发帖前的标签推荐
func (h *Post) SuggestTags(c *gin.Context) error {
	var req types.SuggestTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	tags := h.PostService.SuggestTags(c.Request.Context(), req.Caption, req.MediaURL)
	response.Success(c, types.SuggestTagsResponse{Tags: tags})
	return nil
}

// HomeFeed 首页 feed
func (h *Post) HomeFeed(c *gin.Context) error {
	var req types.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}
	limit, offset := req.Normalize()

	posts, err := h.PostService.HomeFeed(c.Request.Context(), context.GetViewerID(c), limit, offset)
	if err != nil {
		return err
	}

	response.Success(c, types.FeedResponse{
		Posts:   posts,
		HasMore: len(posts) == limit,
	})
	return nil
}

// ToggleLike 点赞/取消点赞
func (h *Post) ToggleLike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthenticated("未登录")
	}

	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	liked, likes, err := h.LikeService.Toggle(c.Request.Context(), userID, postID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"liked": liked, "likes": likes})
	return nil
}

// ToggleSave 收藏/取消收藏
func (h *Post) ToggleSave(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthenticated("未登录")
	}

	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	saved, err := h.SaveService.Toggle(c.Request.Context(), userID, postID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"saved": saved})
	return nil
}
