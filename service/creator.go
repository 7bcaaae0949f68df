package service

import (
	"context"
	"encoding/json"
	"time"

	"Fanhub/dao"
	"Fanhub/models"
	"Fanhub/pkg/response"
	"Fanhub/pkg/snowflake"
	"Fanhub/types"

	"gorm.io/datatypes"
)

var _ ICreatorService = (*CreatorService)(nil)

type ICreatorService interface {
	BecomeCreator(ctx context.Context, profileID int64, req *types.BecomeCreatorRequest) (int64, error)
	UpdateCreator(ctx context.Context, profileID int64, req *types.UpdateCreatorRequest) error
	Discover(ctx context.Context, viewerID int64, limit, offset int) (*types.DiscoverResponse, error)
	GetCreator(ctx context.Context, viewerID, creatorID int64) (*types.Creator, error)
	ListByIDs(ctx context.Context, viewerID int64, ids []int64) ([]*types.Creator, error)
}

type CreatorService struct {
	CreatorDAO *dao.CreatorDAO
	ProfileDAO *dao.ProfileDAO
	SubDAO     *dao.SubscriptionDAO
}

// BecomeCreator 普通账号开通创作者主页（1:1，重复开通报冲突）
func (s *CreatorService) BecomeCreator(ctx context.Context, profileID int64, req *types.BecomeCreatorRequest) (int64, error) {
	profile, err := s.ProfileDAO.FindById(ctx, profileID)
	if err != nil {
		return 0, err
	}
	if profile == nil {
		return 0, response.NotFound("账号不存在")
	}

	existing, err := s.CreatorDAO.FindByProfileID(ctx, profileID)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, response.Conflict("已开通创作者主页")
	}

	taken, err := s.CreatorDAO.IsExist(ctx, "username = ?", req.Username)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, response.Conflict("用户名已被占用")
	}

	if req.Tags == nil {
		req.Tags = []string{}
	}
	tags, err := json.Marshal(req.Tags)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	creator := &models.Creator{
		ID:        snowflake.GenID(),
		ProfileID: profileID,
		Username:  req.Username,
		Bio:       req.Bio,
		Price:     req.Price,
		Tags:      datatypes.JSON(tags),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.CreatorDAO.Create(ctx, creator); err != nil {
		return 0, err
	}
	return creator.ID, nil
}

// UpdateCreator 创作者资料更新
func (s *CreatorService) UpdateCreator(ctx context.Context, profileID int64, req *types.UpdateCreatorRequest) error {
	creator, err := s.CreatorDAO.FindByProfileID(ctx, profileID)
	if err != nil {
		return err
	}
	if creator == nil {
		return response.NotFound("创作者主页不存在")
	}

	updates := map[string]any{
		"updated_at": time.Now(),
	}
	if req.Bio != "" {
		updates["bio"] = req.Bio
	}
	if req.BannerURL != "" {
		updates["banner_url"] = req.BannerURL
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Tags != nil {
		tags, err := json.Marshal(req.Tags)
		if err != nil {
			return err
		}
		updates["tags"] = datatypes.JSON(tags)
	}

	return s.CreatorDAO.Db.WithContext(ctx).
		Model(&models.Creator{}).
		Where("id = ?", creator.ID).
		Updates(updates).Error
}

// Discover 创作者广场，按订阅数倒序，带当前访客的订阅状态
func (s *CreatorService) Discover(ctx context.Context, viewerID int64, limit, offset int) (*types.DiscoverResponse, error) {
	creators, total, err := s.CreatorDAO.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	views, err := s.toViews(ctx, viewerID, creators)
	if err != nil {
		return nil, err
	}
	return &types.DiscoverResponse{
		Creators: views,
		Total:    total,
		HasMore:  offset+len(creators) < int(total),
	}, nil
}

// GetCreator 创作者主页信息
func (s *CreatorService) GetCreator(ctx context.Context, viewerID, creatorID int64) (*types.Creator, error) {
	creator, err := s.CreatorDAO.FindById(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if creator == nil {
		return nil, response.NotFound("创作者不存在")
	}
	views, err := s.toViews(ctx, viewerID, []*models.Creator{creator})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// ListByIDs 按 ID 列表拼装创作者视图，保持传入顺序
func (s *CreatorService) ListByIDs(ctx context.Context, viewerID int64, ids []int64) ([]*types.Creator, error) {
	creators, err := s.CreatorDAO.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	creatorMap := make(map[int64]*models.Creator, len(creators))
	for _, c := range creators {
		creatorMap[c.ID] = c
	}
	ordered := make([]*models.Creator, 0, len(ids))
	for _, id := range ids {
		if c, ok := creatorMap[id]; ok {
			ordered = append(ordered, c)
		}
	}
	return s.toViews(ctx, viewerID, ordered)
}

func (s *CreatorService) toViews(ctx context.Context, viewerID int64, creators []*models.Creator) ([]*types.Creator, error) {
	if len(creators) == 0 {
		return []*types.Creator{}, nil
	}

	profileIDs := make([]int64, 0, len(creators))
	creatorIDs := make([]int64, 0, len(creators))
	for _, c := range creators {
		profileIDs = append(profileIDs, c.ProfileID)
		creatorIDs = append(creatorIDs, c.ID)
	}

	profiles, err := s.ProfileDAO.FindByIDs(ctx, profileIDs)
	if err != nil {
		return nil, err
	}
	profileMap := make(map[int64]*models.Profile, len(profiles))
	for _, p := range profiles {
		profileMap[p.ID] = p
	}

	subscribedSet, err := s.SubDAO.ListSubscribedSet(ctx, viewerID, creatorIDs)
	if err != nil {
		return nil, err
	}

	views := make([]*types.Creator, 0, len(creators))
	for _, c := range creators {
		_, subscribed := subscribedSet[c.ID]
		v := &types.Creator{
			ID:              c.ID,
			ProfileID:       c.ProfileID,
			Username:        c.Username,
			Bio:             c.Bio,
			BannerURL:       c.BannerURL,
			Price:           c.Price,
			SubscriberCount: c.SubscriberCount,
			PostCount:       c.PostCount,
			IsVerified:      c.IsVerified,
			Subscribed:      subscribed,
			CreatedAt:       c.CreatedAt,
		}
		if p, ok := profileMap[c.ProfileID]; ok {
			v.DisplayName = p.DisplayName
			v.AvatarURL = p.AvatarURL
		}
		_ = json.Unmarshal(c.Tags, &v.Tags)
		views = append(views, v)
	}
	return views, nil
}
