package dao

import (
	"context"
	"time"

	"Fanhub/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SavedPostDAO struct {
	Repo[models.SavedPost]
}

func NewSavedPostDAO(db *gorm.DB) *SavedPostDAO {
	return &SavedPostDAO{Repo: NewRepo[models.SavedPost](db)}
}

// Toggle 收藏状态翻转，依赖 uk_user_post 唯一键吸收并发重复收藏
func (d *SavedPostDAO) Toggle(ctx context.Context, userID, postID int64) (bool, error) {
	var saved bool
	err := d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND post_id = ?", userID, postID).
			Delete(&models.SavedPost{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			saved = false
			return nil
		}

		row := models.SavedPost{
			UserID:    userID,
			PostID:    postID,
			CreatedAt: time.Now(),
		}
		ins := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
			DoNothing: true,
		}).Create(&row)
		if ins.Error != nil {
			return ins.Error
		}
		saved = true
		return nil
	})
	return saved, err
}

// ListPostIDsByUser 用户收藏的帖子ID列表（按收藏时间倒序，分页）
func (d *SavedPostDAO) ListPostIDsByUser(ctx context.Context, userID int64, limit, offset int) ([]int64, int64, error) {
	var total int64
	if err := d.Model(ctx).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ids []int64
	err := d.Model(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Pluck("post_id", &ids).Error
	return ids, total, err
}

// ListSavedSet 批量查询收藏状态，feed 渲染用
func (d *SavedPostDAO) ListSavedSet(ctx context.Context, userID int64, postIDs []int64) (map[int64]struct{}, error) {
	set := make(map[int64]struct{})
	if userID == 0 || len(postIDs) == 0 {
		return set, nil
	}
	var ids []int64
	err := d.Model(ctx).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}
