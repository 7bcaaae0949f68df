package service

import (
	"context"

	"Fanhub/dao"
	"Fanhub/dao/cache"
	"Fanhub/pkg/response"
)

var _ ISaveService = (*SaveService)(nil)

type ISaveService interface {
	Toggle(ctx context.Context, userID, postID int64) (bool, error)
}

type SaveService struct {
	SavedDAO  *dao.SavedPostDAO
	PostDAO   *dao.PostDAO
	PageCache *cache.PageCache
}

// Toggle 收藏状态翻转，返回翻转后的状态
func (s *SaveService) Toggle(ctx context.Context, userID, postID int64) (bool, error) {
	exist, err := s.PostDAO.IsExist(ctx, "id = ?", postID)
	if err != nil {
		return false, err
	}
	if !exist {
		return false, response.NotFound("帖子不存在")
	}

	saved, err := s.SavedDAO.Toggle(ctx, userID, postID)
	if err != nil {
		return false, err
	}

	s.PageCache.Invalidate(ctx, userID, cache.PageHome, cache.PageLibrary)

	return saved, nil
}
