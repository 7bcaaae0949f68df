package dao

import (
	"context"

	"Fanhub/models"

	"gorm.io/gorm"
)

type CreatorDAO struct {
	Repo[models.Creator]
}

func NewCreatorDAO(db *gorm.DB) *CreatorDAO {
	return &CreatorDAO{Repo: NewRepo[models.Creator](db)}
}

// FindByProfileID 根据账号查创作者主页
func (d *CreatorDAO) FindByProfileID(ctx context.Context, profileID int64) (*models.Creator, error) {
	return d.FindByWhere(ctx, "profile_id = ?", profileID)
}

// IncrSubscriberCount 订阅数增减，避免负数；需在订阅行写入的同一事务内调用
func (d *CreatorDAO) IncrSubscriberCount(tx *gorm.DB, creatorID int64, delta int64) error {
	return tx.Exec(
		"UPDATE creators SET subscriber_count = GREATEST(subscriber_count + ?, 0), updated_at = NOW() WHERE id = ?",
		delta, creatorID,
	).Error
}

// IncrPostCount 发帖数增减，避免负数；需在帖子写入的同一事务内调用
func (d *CreatorDAO) IncrPostCount(tx *gorm.DB, creatorID int64, delta int64) error {
	return tx.Exec(
		"UPDATE creators SET post_count = GREATEST(post_count + ?, 0), updated_at = NOW() WHERE id = ?",
		delta, creatorID,
	).Error
}

// List 创作者列表，按订阅数倒序
func (d *CreatorDAO) List(ctx context.Context, limit, offset int) ([]*models.Creator, int64, error) {
	var total int64
	if err := d.Model(ctx).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var creators []*models.Creator
	err := d.Db.WithContext(ctx).
		Order("subscriber_count DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&creators).Error
	return creators, total, err
}

// FindByIDs 根据 ID 列表查询
func (d *CreatorDAO) FindByIDs(ctx context.Context, ids []int64) ([]*models.Creator, error) {
	if len(ids) == 0 {
		return []*models.Creator{}, nil
	}
	var creators []*models.Creator
	err := d.Db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&creators).Error
	return creators, err
}

// SumRevenue 月收入估算：Σ(订阅价 × 订阅数)，管理端统计用
func (d *CreatorDAO) SumRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := d.Model(ctx).
		Select("COALESCE(SUM(price * subscriber_count), 0)").
		Scan(&total).Error
	return total, err
}

// ResetCounts 用真计数覆盖计数缓存，管理端校准用
func (d *CreatorDAO) ResetCounts(ctx context.Context, creatorID, subscriberCount, postCount int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Creator{}).
		Where("id = ?", creatorID).
		Updates(map[string]any{
			"subscriber_count": subscriberCount,
			"post_count":       postCount,
		}).Error
}

// SetVerified 管理端认证标记
func (d *CreatorDAO) SetVerified(ctx context.Context, creatorID int64, verified bool) error {
	return d.Db.WithContext(ctx).
		Model(&models.Creator{}).
		Where("id = ?", creatorID).
		Update("is_verified", verified).Error
}
