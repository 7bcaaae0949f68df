package dao

import (
	"context"

	"Fanhub/models"

	"gorm.io/gorm"
)

type MessageDAO struct {
	Repo[models.Message]
}

func NewMessageDAO(db *gorm.DB) *MessageDAO {
	return &MessageDAO{Repo: NewRepo[models.Message](db)}
}

// ListByThread 会话内消息列表（按时间正序，分页）
func (d *MessageDAO) ListByThread(ctx context.Context, threadID int64, limit, offset int) ([]*models.Message, error) {
	var msgs []*models.Message
	err := d.Db.WithContext(ctx).
		Where("thread_id = ?", threadID).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&msgs).Error
	return msgs, err
}

// CountAll 全站消息总数，管理端统计用
func (d *MessageDAO) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := d.Model(ctx).Count(&count).Error
	return count, err
}
