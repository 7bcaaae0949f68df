package dao

import (
	"context"

	"Fanhub/models"

	"gorm.io/gorm"
)

type PostDAO struct {
	Repo[models.Post]

	CreatorDAO *CreatorDAO
}

func NewPostDAO(db *gorm.DB, creatorDAO *CreatorDAO) *PostDAO {
	return &PostDAO{
		Repo:       NewRepo[models.Post](db),
		CreatorDAO: creatorDAO,
	}
}

// CreateWithCount 发帖：帖子写入与 post_count+1 同一事务，要么都提交要么都回滚
func (d *PostDAO) CreateWithCount(ctx context.Context, post *models.Post) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		return d.CreatorDAO.IncrPostCount(tx, post.CreatorID, 1)
	})
}

// IncrLikesCount 点赞计数增减，避免负数
func (d *PostDAO) IncrLikesCount(tx *gorm.DB, postID int64, delta int64) error {
	return tx.Exec(
		"UPDATE posts SET likes_count = GREATEST(likes_count + ?, 0), updated_at = NOW() WHERE id = ?",
		delta, postID,
	).Error
}

// FindByCreatorID 创作者主页帖子列表
func (d *PostDAO) FindByCreatorID(ctx context.Context, creatorID int64, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := d.Db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

// FindFeed 首页 feed：订阅创作者的全部帖子 + 其他创作者的公开帖子
func (d *PostDAO) FindFeed(ctx context.Context, subscribedCreatorIDs []int64, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	q := d.Db.WithContext(ctx)
	if len(subscribedCreatorIDs) > 0 {
		q = q.Where("visibility = ? OR creator_id IN ?", models.VisibilityPublic, subscribedCreatorIDs)
	} else {
		q = q.Where("visibility = ?", models.VisibilityPublic)
	}
	err := q.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

// CountByCreator 创作者帖子真计数，校准计数缓存用
func (d *PostDAO) CountByCreator(ctx context.Context, creatorID int64) (int64, error) {
	var count int64
	err := d.Model(ctx).
		Where("creator_id = ?", creatorID).
		Count(&count).Error
	return count, err
}

// CountAll 全站帖子总数，管理端统计用
func (d *PostDAO) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := d.Model(ctx).Count(&count).Error
	return count, err
}

// FindByIDs 根据 ID 列表查询
func (d *PostDAO) FindByIDs(ctx context.Context, ids []int64) ([]*models.Post, error) {
	if len(ids) == 0 {
		return []*models.Post{}, nil
	}
	var posts []*models.Post
	err := d.Db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&posts).Error
	return posts, err
}
