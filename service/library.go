package service

import (
	"context"

	"Fanhub/dao"
	"Fanhub/dao/cache"
	"Fanhub/models"
	"Fanhub/types"
)

var _ ILibraryService = (*LibraryService)(nil)

type ILibraryService interface {
	Get(ctx context.Context, userID int64, limit, offset int) (*types.LibraryResponse, error)
}

// LibraryService 我的收藏 + 我的订阅
type LibraryService struct {
	SavedDAO       *dao.SavedPostDAO
	PostDAO        *dao.PostDAO
	SubDAO         *dao.SubscriptionDAO
	AccessService  IAccessService
	CreatorService ICreatorService
	PageCache      *cache.PageCache
}

func (s *LibraryService) Get(ctx context.Context, userID int64, limit, offset int) (*types.LibraryResponse, error) {
	cacheable := cacheableFirstPage(limit, offset)
	if cacheable {
		var cached types.LibraryResponse
		if s.PageCache.Get(ctx, cache.PageLibrary, userID, &cached) {
			return &cached, nil
		}
	}

	ids, total, err := s.SavedDAO.ListPostIDsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	posts, err := s.PostDAO.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	// 按收藏时间顺序（ListPostIDsByUser 已按 created_at DESC）恢复顺序
	postMap := make(map[int64]*models.Post, len(posts))
	for _, p := range posts {
		postMap[p.ID] = p
	}
	ordered := make([]*models.Post, 0, len(ids))
	for _, id := range ids {
		if p, ok := postMap[id]; ok {
			ordered = append(ordered, p)
		}
	}

	views, err := s.AccessService.ResolvePosts(ctx, userID, ordered)
	if err != nil {
		return nil, err
	}

	creatorIDs, err := s.SubDAO.ListCreatorIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	subs, err := s.CreatorService.ListByIDs(ctx, userID, creatorIDs)
	if err != nil {
		return nil, err
	}

	resp := &types.LibraryResponse{
		SavedPosts:    views,
		SavedTotal:    total,
		Subscriptions: subs,
	}
	if cacheable {
		s.PageCache.Set(ctx, cache.PageLibrary, userID, resp)
	}
	return resp, nil
}
