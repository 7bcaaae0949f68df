package service

import (
	"context"
	"time"

	"Fanhub/dao"
	"Fanhub/models"
	"Fanhub/pkg/response"
	"Fanhub/pkg/snowflake"
	"Fanhub/types"
)

var _ IQuickReplyService = (*QuickReplyService)(nil)

type IQuickReplyService interface {
	Create(ctx context.Context, profileID int64, req *types.CreateQuickReplyRequest) (int64, error)
	Update(ctx context.Context, profileID, id int64, req *types.UpdateQuickReplyRequest) error
	Delete(ctx context.Context, profileID, id int64) error
	List(ctx context.Context, profileID int64) ([]*types.QuickReply, error)
}

// QuickReplyService 私信快捷回复模板，创作者专属
type QuickReplyService struct {
	QuickReplyDAO *dao.QuickReplyDAO
	CreatorDAO    *dao.CreatorDAO
}

func (s *QuickReplyService) creatorOf(ctx context.Context, profileID int64) (*models.Creator, error) {
	creator, err := s.CreatorDAO.FindByProfileID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if creator == nil {
		return nil, response.NotFound("创作者主页不存在")
	}
	return creator, nil
}

func (s *QuickReplyService) Create(ctx context.Context, profileID int64, req *types.CreateQuickReplyRequest) (int64, error) {
	creator, err := s.creatorOf(ctx, profileID)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	item := &models.QuickReplyTemplate{
		ID:        snowflake.GenID(),
		CreatorID: creator.ID,
		Name:      req.Name,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.QuickReplyDAO.Create(ctx, item); err != nil {
		return 0, err
	}
	return item.ID, nil
}

func (s *QuickReplyService) Update(ctx context.Context, profileID, id int64, req *types.UpdateQuickReplyRequest) error {
	creator, err := s.creatorOf(ctx, profileID)
	if err != nil {
		return err
	}

	item, err := s.QuickReplyDAO.FindById(ctx, id)
	if err != nil {
		return err
	}
	if item == nil || item.CreatorID != creator.ID {
		return response.NotFound("模板不存在")
	}

	updates := map[string]any{"updated_at": time.Now()}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Content != "" {
		updates["content"] = req.Content
	}
	return s.QuickReplyDAO.UpdateById(ctx, id, updates)
}

func (s *QuickReplyService) Delete(ctx context.Context, profileID, id int64) error {
	creator, err := s.creatorOf(ctx, profileID)
	if err != nil {
		return err
	}

	item, err := s.QuickReplyDAO.FindById(ctx, id)
	if err != nil {
		return err
	}
	if item == nil || item.CreatorID != creator.ID {
		return response.NotFound("模板不存在")
	}
	return s.QuickReplyDAO.Delete(ctx, "id = ?", id)
}

func (s *QuickReplyService) List(ctx context.Context, profileID int64) ([]*types.QuickReply, error) {
	creator, err := s.creatorOf(ctx, profileID)
	if err != nil {
		return nil, err
	}

	items, err := s.QuickReplyDAO.ListByCreator(ctx, creator.ID)
	if err != nil {
		return nil, err
	}
	views := make([]*types.QuickReply, 0, len(items))
	for _, item := range items {
		views = append(views, &types.QuickReply{
			ID:      item.ID,
			Name:    item.Name,
			Content: item.Content,
		})
	}
	return views, nil
}
