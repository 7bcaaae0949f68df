package models

import "time"

// QuickReplyTemplate 私信快捷回复模板，独立实体，无跨表约束
type QuickReplyTemplate struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id"`
	CreatorID int64     `gorm:"column:creator_id;not null;index" json:"creator_id"`
	Name      string    `gorm:"column:name;type:varchar(50);not null" json:"name"`
	Content   string    `gorm:"column:content;type:varchar(1000);not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (QuickReplyTemplate) TableName() string {
	return "quick_reply_templates"
}
