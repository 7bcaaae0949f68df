package models

import (
	"time"

	"gorm.io/datatypes"
)

// Creator 创作者主页
// subscriber_count / post_count 为计数缓存，随订阅、发帖变更同事务更新
type Creator struct {
	ID              int64          `gorm:"column:id;primary_key" json:"id"`
	ProfileID       int64          `gorm:"column:profile_id;not null;uniqueIndex" json:"profile_id"`
	Username        string         `gorm:"column:username;type:varchar(30);not null;uniqueIndex" json:"username"`
	Bio             string         `gorm:"column:bio;type:varchar(500);not null;default:''" json:"bio"`
	BannerURL       string         `gorm:"column:banner_url;type:varchar(500);not null;default:''" json:"banner_url"`
	Price           float64        `gorm:"column:price;type:decimal(10,2);not null;default:0" json:"price"`
	SubscriberCount int64          `gorm:"column:subscriber_count;not null;default:0" json:"subscriber_count"`
	PostCount       int64          `gorm:"column:post_count;not null;default:0" json:"post_count"`
	IsVerified      bool           `gorm:"column:is_verified;not null;default:false" json:"is_verified"`
	Tags            datatypes.JSON `gorm:"column:tags;type:json" json:"tags"`
	CreatedAt       time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (Creator) TableName() string {
	return "creators"
}
