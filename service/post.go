package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"Fanhub/dao"
	"Fanhub/dao/cache"
	"Fanhub/models"
	"Fanhub/pkg/llm"
	"Fanhub/pkg/response"
	"Fanhub/pkg/snowflake"
	"Fanhub/types"

	"gorm.io/datatypes"
)

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	CreatePost(ctx context.Context, profileID int64, req *types.CreatePostRequest) (int64, error)
	HomeFeed(ctx context.Context, viewerID int64, limit, offset int) ([]*types.PostView, error)
	CreatorPosts(ctx context.Context, viewerID, creatorID int64, limit, offset int) ([]*types.PostView, error)
	SuggestTags(ctx context.Context, caption, mediaURL string) []string
}

type PostService struct {
	PostDAO       *dao.PostDAO
	CreatorDAO    *dao.CreatorDAO
	SubDAO        *dao.SubscriptionDAO
	AccessService IAccessService
	PageCache     *cache.PageCache
	TagGenerator  *llm.TagGenerator
}

// cacheableFirstPage 页面缓存只认默认页大小的第一页：
// 缓存 key 不含 limit，非默认页大小的请求命中缓存会拿到错误条数
func cacheableFirstPage(limit, offset int) bool {
	return offset == 0 && limit == types.DefaultPageSize
}

// validatePostFields 发帖参数校验
func validatePostFields(req *types.CreatePostRequest) error {
	switch req.Type {
	case models.PostTypeImage, models.PostTypeVideo:
	default:
		return response.ValidationFailed("type 仅支持 image / video")
	}
	switch req.Visibility {
	case models.VisibilityPublic, models.VisibilitySubscribers:
	default:
		return response.ValidationFailed("visibility 仅支持 public / subscribers")
	}
	if strings.TrimSpace(req.MediaURL) == "" {
		return response.ValidationFailed("media_url 不能为空")
	}
	return nil
}

// CreatePost 发帖：校验创作者身份和参数，帖子写入与 post_count+1 同一事务
func (s *PostService) CreatePost(ctx context.Context, profileID int64, req *types.CreatePostRequest) (int64, error) {
	creator, err := s.CreatorDAO.FindByProfileID(ctx, profileID)
	if err != nil {
		return 0, err
	}
	if creator == nil {
		return 0, response.NotFound("创作者主页不存在")
	}

	if err := validatePostFields(req); err != nil {
		return 0, err
	}

	if req.Tags == nil {
		req.Tags = []string{}
	}
	tags, err := json.Marshal(req.Tags)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	post := &models.Post{
		ID:           snowflake.GenID(),
		CreatorID:    creator.ID,
		Type:         req.Type,
		MediaURL:     req.MediaURL,
		ThumbnailURL: req.ThumbnailURL,
		Caption:      req.Caption,
		Tags:         datatypes.JSON(tags),
		Visibility:   req.Visibility,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.PostDAO.CreateWithCount(ctx, post); err != nil {
		return 0, err
	}

	// 发帖人自己的页面缓存失效
	s.PageCache.Invalidate(ctx, profileID, cache.PageHome, cache.PageDiscover)

	return post.ID, nil
}

// HomeFeed 首页：订阅创作者的帖子 + 公开帖，逐帖过可见性判定
func (s *PostService) HomeFeed(ctx context.Context, viewerID int64, limit, offset int) ([]*types.PostView, error) {
	// 首页只缓存默认页大小的第一页
	cacheable := viewerID != 0 && cacheableFirstPage(limit, offset)
	if cacheable {
		var cached []*types.PostView
		if s.PageCache.Get(ctx, cache.PageHome, viewerID, &cached) {
			return cached, nil
		}
	}

	var creatorIDs []int64
	if viewerID != 0 {
		ids, err := s.SubDAO.ListCreatorIDsByUser(ctx, viewerID)
		if err != nil {
			return nil, err
		}
		creatorIDs = ids
	}

	posts, err := s.PostDAO.FindFeed(ctx, creatorIDs, limit, offset)
	if err != nil {
		return nil, err
	}
	views, err := s.AccessService.ResolvePosts(ctx, viewerID, posts)
	if err != nil {
		return nil, err
	}

	if cacheable {
		s.PageCache.Set(ctx, cache.PageHome, viewerID, views)
	}
	return views, nil
}

// CreatorPosts 创作者主页帖子列表，逐帖过可见性判定
func (s *PostService) CreatorPosts(ctx context.Context, viewerID, creatorID int64, limit, offset int) ([]*types.PostView, error) {
	exist, err := s.CreatorDAO.IsExist(ctx, "id = ?", creatorID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.NotFound("创作者不存在")
	}

	posts, err := s.PostDAO.FindByCreatorID(ctx, creatorID, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.AccessService.ResolvePosts(ctx, viewerID, posts)
}

// SuggestTags 发帖前的标签推荐，模型不可用时返回空列表
func (s *PostService) SuggestTags(ctx context.Context, caption, mediaURL string) []string {
	return s.TagGenerator.GenPostTags(ctx, caption, mediaURL)
}
