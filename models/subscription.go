package models

import "time"

// Subscription 订阅关系
// 唯一键: user_id + creator_id，同一用户对同一创作者最多一条
type Subscription struct {
	ID        int64     `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_user_creator,priority:1" json:"user_id"`
	CreatorID int64     `gorm:"column:creator_id;not null;uniqueIndex:uk_user_creator,priority:2;index" json:"creator_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Subscription) TableName() string { return "subscriptions" }
