package dao

import (
	"context"

	"Fanhub/models"

	"gorm.io/gorm"
)

type QuickReplyDAO struct {
	Repo[models.QuickReplyTemplate]
}

func NewQuickReplyDAO(db *gorm.DB) *QuickReplyDAO {
	return &QuickReplyDAO{Repo: NewRepo[models.QuickReplyTemplate](db)}
}

// ListByCreator 创作者的快捷回复模板列表
func (d *QuickReplyDAO) ListByCreator(ctx context.Context, creatorID int64) ([]*models.QuickReplyTemplate, error) {
	var items []*models.QuickReplyTemplate
	err := d.Db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

// UpdateById 按字段更新，校验归属由 service 层负责
func (d *QuickReplyDAO) UpdateById(ctx context.Context, id int64, data map[string]any) error {
	return d.Db.WithContext(ctx).
		Model(&models.QuickReplyTemplate{}).
		Where("id = ?", id).
		Updates(data).Error
}
