package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	PostTypeImage = "image"
	PostTypeVideo = "video"

	VisibilityPublic      = "public"
	VisibilitySubscribers = "subscribers"
)

type Post struct {
	ID            int64          `gorm:"column:id;primary_key" json:"id"`
	CreatorID     int64          `gorm:"column:creator_id;not null;index:idx_creator_created" json:"creator_id"`
	Type          string         `gorm:"column:type;type:varchar(10);not null" json:"type"`
	MediaURL      string         `gorm:"column:media_url;type:varchar(500);not null" json:"media_url"`
	ThumbnailURL  string         `gorm:"column:thumbnail_url;type:varchar(500);not null;default:''" json:"thumbnail_url"`
	Caption       string         `gorm:"column:caption;type:varchar(1000);not null;default:''" json:"caption"`
	Tags          datatypes.JSON `gorm:"column:tags;type:json" json:"tags"`
	Visibility    string         `gorm:"column:visibility;type:varchar(15);not null;default:'public'" json:"visibility"`
	LikesCount    int64          `gorm:"column:likes_count;not null;default:0" json:"likes_count"`
	CommentsCount int64          `gorm:"column:comments_count;not null;default:0" json:"comments_count"`
	CreatedAt     time.Time      `gorm:"column:created_at;index:idx_creator_created" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}
