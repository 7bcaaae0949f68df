package service

import (
	"context"
	"encoding/json"

	"Fanhub/dao"
	"Fanhub/models"
	"Fanhub/types"
)

var _ IAccessService = (*AccessService)(nil)

type IAccessService interface {
	CanView(ctx context.Context, viewerID int64, post *models.Post) (bool, error)
	ResolvePosts(ctx context.Context, viewerID int64, posts []*models.Post) ([]*types.PostView, error)
}

// AccessService 内容可见性判定。结果跟随订阅状态实时变化，调用方不得跨请求缓存
type AccessService struct {
	SubscriptionDAO *dao.SubscriptionDAO
	CreatorDAO      *dao.CreatorDAO
	LikeDAO         *dao.PostLikeDAO
	SavedDAO        *dao.SavedPostDAO
}

// canViewResolved 纯判定规则：
// 创作者不存在一律不可见（兜底拒绝）；公开帖对所有人可见；
// 订阅可见的帖子当且仅当存在订阅关系时可见
func canViewResolved(post *models.Post, creatorExists, subscribed bool) bool {
	if !creatorExists {
		return false
	}
	if post.Visibility == models.VisibilityPublic {
		return true
	}
	return subscribed
}

// CanView 单帖判定，viewerID 为 0 表示匿名访客
func (s *AccessService) CanView(ctx context.Context, viewerID int64, post *models.Post) (bool, error) {
	creator, err := s.CreatorDAO.FindById(ctx, post.CreatorID)
	if err != nil {
		return false, err
	}
	if creator == nil {
		return false, nil
	}
	if post.Visibility == models.VisibilityPublic {
		return true, nil
	}
	if viewerID == 0 {
		return false, nil
	}
	subscribed, err := s.SubscriptionDAO.IsSubscribed(ctx, viewerID, post.CreatorID)
	if err != nil {
		return false, err
	}
	return canViewResolved(post, true, subscribed), nil
}

// ResolvePosts 批量判定并拼装帖子视图：一次请求内合并订阅/点赞/收藏查询，
// 不做跨请求复用。锁定的帖子不下发媒体地址
func (s *AccessService) ResolvePosts(ctx context.Context, viewerID int64, posts []*models.Post) ([]*types.PostView, error) {
	if len(posts) == 0 {
		return []*types.PostView{}, nil
	}

	creatorIDs := make([]int64, 0, len(posts))
	postIDs := make([]int64, 0, len(posts))
	seen := make(map[int64]struct{}, len(posts))
	for _, p := range posts {
		postIDs = append(postIDs, p.ID)
		if _, ok := seen[p.CreatorID]; !ok {
			seen[p.CreatorID] = struct{}{}
			creatorIDs = append(creatorIDs, p.CreatorID)
		}
	}

	creators, err := s.CreatorDAO.FindByIDs(ctx, creatorIDs)
	if err != nil {
		return nil, err
	}
	creatorMap := make(map[int64]*models.Creator, len(creators))
	for _, c := range creators {
		creatorMap[c.ID] = c
	}

	subscribedSet, err := s.SubscriptionDAO.ListSubscribedSet(ctx, viewerID, creatorIDs)
	if err != nil {
		return nil, err
	}
	likedSet, err := s.LikeDAO.ListLikedSet(ctx, viewerID, postIDs)
	if err != nil {
		return nil, err
	}
	savedSet, err := s.SavedDAO.ListSavedSet(ctx, viewerID, postIDs)
	if err != nil {
		return nil, err
	}

	views := make([]*types.PostView, 0, len(posts))
	for _, p := range posts {
		creator, creatorExists := creatorMap[p.CreatorID]
		_, subscribed := subscribedSet[p.CreatorID]
		_, liked := likedSet[p.ID]
		_, saved := savedSet[p.ID]

		v := &types.PostView{
			ID:            p.ID,
			CreatorID:     p.CreatorID,
			Type:          p.Type,
			Caption:       p.Caption,
			Visibility:    p.Visibility,
			Locked:        !canViewResolved(p, creatorExists, subscribed),
			Liked:         liked,
			Saved:         saved,
			LikesCount:    p.LikesCount,
			CommentsCount: p.CommentsCount,
			CreatedAt:     p.CreatedAt,
		}
		if creatorExists {
			v.CreatorUsername = creator.Username
		}
		if !v.Locked {
			v.MediaURL = p.MediaURL
			v.ThumbnailURL = p.ThumbnailURL
		}
		_ = json.Unmarshal(p.Tags, &v.Tags)
		views = append(views, v)
	}
	return views, nil
}
