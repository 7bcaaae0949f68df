package service

import (
	"context"

	"Fanhub/dao"
	"Fanhub/dao/cache"
	"Fanhub/pkg/response"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	Toggle(ctx context.Context, userID, postID int64) (liked bool, likes int64, err error)
}

type LikeService struct {
	LikeDAO   *dao.PostLikeDAO
	PostDAO   *dao.PostDAO
	PageCache *cache.PageCache
}

// Toggle 点赞状态翻转，返回翻转后的状态和最新点赞数
func (s *LikeService) Toggle(ctx context.Context, userID, postID int64) (bool, int64, error) {
	post, err := s.PostDAO.FindById(ctx, postID)
	if err != nil {
		return false, 0, err
	}
	if post == nil {
		return false, 0, response.NotFound("帖子不存在")
	}

	liked, err := s.LikeDAO.Toggle(ctx, userID, postID)
	if err != nil {
		return false, 0, err
	}

	// 点赞状态变了，缓存的 feed 里 liked 标记和点赞数已经过期
	s.PageCache.Invalidate(ctx, userID, cache.PageHome, cache.PageLibrary)

	// 重读计数，返回事务提交后的值
	fresh, err := s.PostDAO.FindById(ctx, postID)
	if err != nil {
		return liked, 0, err
	}
	var likes int64
	if fresh != nil {
		likes = fresh.LikesCount
	}
	return liked, likes, nil
}
