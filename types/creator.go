package types

import "time"

type BecomeCreatorRequest struct {
	Username string   `json:"username" binding:"required,min=3,max=30"`
	Bio      string   `json:"bio" binding:"max=500"`
	Price    float64  `json:"price" binding:"min=0"`
	Tags     []string `json:"tags"`
}

type UpdateCreatorRequest struct {
	Bio       string   `json:"bio" binding:"max=500"`
	BannerURL string   `json:"banner_url" binding:"max=500"`
	Price     *float64 `json:"price" binding:"omitempty,min=0"`
	Tags      []string `json:"tags"`
}

type Creator struct {
	ID              int64     `json:"id"`
	ProfileID       int64     `json:"profile_id"`
	Username        string    `json:"username"`
	DisplayName     string    `json:"display_name"`
	AvatarURL       string    `json:"avatar_url"`
	Bio             string    `json:"bio"`
	BannerURL       string    `json:"banner_url"`
	Price           float64   `json:"price"`
	SubscriberCount int64     `json:"subscriber_count"`
	PostCount       int64     `json:"post_count"`
	IsVerified      bool      `json:"is_verified"`
	Tags            []string  `json:"tags"`
	Subscribed      bool      `json:"subscribed"`
	CreatedAt       time.Time `json:"created_at"`
}

type DiscoverResponse struct {
	Creators []*Creator `json:"creators"`
	Total    int64      `json:"total"`
	HasMore  bool       `json:"has_more"`
}

type CreatorPageResponse struct {
	Creator *Creator    `json:"creator"`
	Posts   []*PostView `json:"posts"`
}
