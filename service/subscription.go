package service

import (
	"context"

	"Fanhub/dao"
	"Fanhub/dao/cache"
	"Fanhub/pkg/response"
)

var _ ISubscriptionService = (*SubscriptionService)(nil)

type ISubscriptionService interface {
	Toggle(ctx context.Context, userID, creatorID int64) (bool, error)
	IsSubscribed(ctx context.Context, userID, creatorID int64) (bool, error)
}

type SubscriptionService struct {
	SubscriptionDAO *dao.SubscriptionDAO
	CreatorDAO      *dao.CreatorDAO
	PageCache       *cache.PageCache
}

// Toggle 订阅状态翻转：已订阅则退订，未订阅则订阅，返回翻转后的状态。
// 行写入与 subscriber_count 增减在 DAO 事务内完成
func (s *SubscriptionService) Toggle(ctx context.Context, userID, creatorID int64) (bool, error) {
	creator, err := s.CreatorDAO.FindById(ctx, creatorID)
	if err != nil {
		return false, err
	}
	if creator == nil {
		return false, response.NotFound("创作者不存在")
	}
	// 不能订阅自己的主页
	if creator.ProfileID == userID {
		return false, response.ValidationFailed("不能订阅自己")
	}

	subscribed, err := s.SubscriptionDAO.Toggle(ctx, userID, creatorID)
	if err != nil {
		return false, err
	}

	// 订阅状态变了，该用户的页面缓存全部失效
	s.PageCache.Invalidate(ctx, userID, cache.PageHome, cache.PageDiscover, cache.PageLibrary)

	return subscribed, nil
}

func (s *SubscriptionService) IsSubscribed(ctx context.Context, userID, creatorID int64) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	return s.SubscriptionDAO.IsSubscribed(ctx, userID, creatorID)
}
