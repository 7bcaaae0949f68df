package dao

import (
	"context"
	"time"

	"Fanhub/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionDAO struct {
	Repo[models.Subscription]

	CreatorDAO *CreatorDAO
}

func NewSubscriptionDAO(db *gorm.DB, creatorDAO *CreatorDAO) *SubscriptionDAO {
	return &SubscriptionDAO{
		Repo:       NewRepo[models.Subscription](db),
		CreatorDAO: creatorDAO,
	}
}

// IsSubscribed 是否订阅中
func (d *SubscriptionDAO) IsSubscribed(ctx context.Context, userID, creatorID int64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND creator_id = ?", userID, creatorID)
}

// Toggle 订阅状态翻转：存在则删行并 -1，不存在则插行并 +1，整体一个事务。
// 插入依赖 uk_user_creator 唯一键吸收并发重复订阅：冲突时按已订阅处理，计数不动。
func (d *SubscriptionDAO) Toggle(ctx context.Context, userID, creatorID int64) (bool, error) {
	var subscribed bool
	err := d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND creator_id = ?", userID, creatorID).
			Delete(&models.Subscription{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			// 退订：只有真正删到行才减计数，防止并发重复递减
			subscribed = false
			return d.CreatorDAO.IncrSubscriberCount(tx, creatorID, -1)
		}

		row := models.Subscription{
			UserID:    userID,
			CreatorID: creatorID,
			CreatedAt: time.Now(),
		}
		ins := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "creator_id"}},
			DoNothing: true,
		}).Create(&row)
		if ins.Error != nil {
			return ins.Error
		}
		subscribed = true
		if ins.RowsAffected == 0 {
			// 并发下别的请求先插入成功，视为已订阅，计数不动
			return nil
		}
		return d.CreatorDAO.IncrSubscriberCount(tx, creatorID, 1)
	})
	return subscribed, err
}

// ListCreatorIDsByUser 用户订阅的创作者ID列表（按订阅时间倒序）
func (d *SubscriptionDAO) ListCreatorIDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := d.Model(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("creator_id", &ids).Error
	return ids, err
}

// ListSubscribedSet 批量查询订阅状态，feed 渲染用
func (d *SubscriptionDAO) ListSubscribedSet(ctx context.Context, userID int64, creatorIDs []int64) (map[int64]struct{}, error) {
	set := make(map[int64]struct{})
	if userID == 0 || len(creatorIDs) == 0 {
		return set, nil
	}
	var ids []int64
	err := d.Model(ctx).
		Where("user_id = ? AND creator_id IN ?", userID, creatorIDs).
		Pluck("creator_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

// CountByCreator 订阅行真计数，校验计数缓存用
func (d *SubscriptionDAO) CountByCreator(ctx context.Context, creatorID int64) (int64, error) {
	var count int64
	err := d.Model(ctx).
		Where("creator_id = ?", creatorID).
		Count(&count).Error
	return count, err
}

// CountAll 全站订阅总数，管理端统计用
func (d *SubscriptionDAO) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := d.Model(ctx).Count(&count).Error
	return count, err
}
