package models

import "time"

// PostLike 点赞记录
// 唯一键: user_id + post_id，likes_count 随本表增删同事务更新
type PostLike struct {
	ID        int64     `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_user_post_like,priority:1" json:"user_id"`
	PostID    int64     `gorm:"column:post_id;not null;uniqueIndex:uk_user_post_like,priority:2" json:"post_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (PostLike) TableName() string { return "post_likes" }
