package service

import (
	"context"

	"Fanhub/dao"
	"Fanhub/pkg/response"
	"Fanhub/types"
)

var _ IAdminService = (*AdminService)(nil)

type IAdminService interface {
	Stats(ctx context.Context) (*types.AdminStats, error)
	SetVerified(ctx context.Context, creatorID int64, verified bool) error
	ReconcileCounters(ctx context.Context, creatorID int64) (*types.ReconcileResult, error)
}

// AdminService 管理端能力，入口由 role=admin 的 JWT 声明把守
type AdminService struct {
	CreatorDAO *dao.CreatorDAO
	SubDAO     *dao.SubscriptionDAO
	PostDAO    *dao.PostDAO
	MessageDAO *dao.MessageDAO
}

func (s *AdminService) Stats(ctx context.Context) (*types.AdminStats, error) {
	revenue, err := s.CreatorDAO.SumRevenue(ctx)
	if err != nil {
		return nil, err
	}
	subscribers, err := s.SubDAO.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.PostDAO.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	messages, err := s.MessageDAO.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	return &types.AdminStats{
		TotalRevenue: revenue,
		Subscribers:  subscribers,
		Posts:        posts,
		Messages:     messages,
	}, nil
}

// ReconcileCounters 用订阅行和帖子行的真计数覆盖计数缓存，修正漂移
func (s *AdminService) ReconcileCounters(ctx context.Context, creatorID int64) (*types.ReconcileResult, error) {
	exist, err := s.CreatorDAO.IsExist(ctx, "id = ?", creatorID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.NotFound("创作者不存在")
	}

	subscribers, err := s.SubDAO.CountByCreator(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	posts, err := s.PostDAO.CountByCreator(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	if err := s.CreatorDAO.ResetCounts(ctx, creatorID, subscribers, posts); err != nil {
		return nil, err
	}
	return &types.ReconcileResult{
		CreatorID:       creatorID,
		SubscriberCount: subscribers,
		PostCount:       posts,
	}, nil
}

func (s *AdminService) SetVerified(ctx context.Context, creatorID int64, verified bool) error {
	exist, err := s.CreatorDAO.IsExist(ctx, "id = ?", creatorID)
	if err != nil {
		return err
	}
	if !exist {
		return response.NotFound("创作者不存在")
	}
	return s.CreatorDAO.SetVerified(ctx, creatorID, verified)
}
