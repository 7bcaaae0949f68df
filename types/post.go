package types

import "time"

type CreatePostRequest struct {
	Type         string   `json:"type" binding:"required"`
	MediaURL     string   `json:"media_url" binding:"required,max=500"`
	ThumbnailURL string   `json:"thumbnail_url" binding:"max=500"`
	Caption      string   `json:"caption" binding:"max=1000"`
	Tags         []string `json:"tags"`
	Visibility   string   `json:"visibility" binding:"required"`
}

type CreatePostResponse struct {
	PostID int64 `json:"post_id"`
}

// PostView 对外的帖子视图：locked 时媒体地址不下发
type PostView struct {
	ID              int64     `json:"id"`
	CreatorID       int64     `json:"creator_id"`
	CreatorUsername string    `json:"creator_username"`
	Type            string    `json:"type"`
	MediaURL        string    `json:"media_url"`
	ThumbnailURL    string    `json:"thumbnail_url"`
	Caption         string    `json:"caption"`
	Tags            []string  `json:"tags"`
	Visibility      string    `json:"visibility"`
	Locked          bool      `json:"locked"`
	Liked           bool      `json:"liked"`
	Saved           bool      `json:"saved"`
	LikesCount      int64     `json:"likes_count"`
	CommentsCount   int64     `json:"comments_count"`
	CreatedAt       time.Time `json:"created_at"`
}

type FeedResponse struct {
	Posts   []*PostView `json:"posts"`
	HasMore bool        `json:"has_more"`
}

type SuggestTagsRequest struct {
	Caption  string `json:"caption" binding:"max=1000"`
	MediaURL string `json:"media_url" binding:"max=500"`
}

type SuggestTagsResponse struct {
	Tags []string `json:"tags"`
}
