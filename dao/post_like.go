package dao

import (
	"context"
	"time"

	"Fanhub/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostLikeDAO struct {
	Repo[models.PostLike]

	PostDAO *PostDAO
}

func NewPostLikeDAO(db *gorm.DB, postDAO *PostDAO) *PostLikeDAO {
	return &PostLikeDAO{
		Repo:    NewRepo[models.PostLike](db),
		PostDAO: postDAO,
	}
}

// Toggle 点赞状态翻转，点赞行与 likes_count 同事务增减
func (d *PostLikeDAO) Toggle(ctx context.Context, userID, postID int64) (bool, error) {
	var liked bool
	err := d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND post_id = ?", userID, postID).
			Delete(&models.PostLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			liked = false
			return d.PostDAO.IncrLikesCount(tx, postID, -1)
		}

		row := models.PostLike{
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
		liked = true
		if ins.RowsAffected == 0 {
			return nil
		}
		return d.PostDAO.IncrLikesCount(tx, postID, 1)
	})
	return liked, err
}

// ListLikedSet 批量查询点赞状态，feed 渲染用
func (d *PostLikeDAO) ListLikedSet(ctx context.Context, userID int64, postIDs []int64) (map[int64]struct{}, error) {
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
