package models

import "time"

// SavedPost 收藏记录
// 唯一键: user_id + post_id
type SavedPost struct {
	ID        int64     `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_user_post,priority:1" json:"user_id"`
	PostID    int64     `gorm:"column:post_id;not null;uniqueIndex:uk_user_post,priority:2" json:"post_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (SavedPost) TableName() string { return "saved_posts" }
