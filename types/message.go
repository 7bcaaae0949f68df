package types

import "time"

type SendMessageRequest struct {
	PeerID  int64  `json:"peer_id" binding:"required"`
	Content string `json:"content" binding:"required,max=2000"`
}

type MessageView struct {
	ID        int64     `json:"id"`
	ThreadID  int64     `json:"thread_id"`
	SenderID  int64     `json:"sender_id"`
	Content   string    `json:"content"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// ThreadView 会话列表项，携带对端信息与自己的未读数
type ThreadView struct {
	ID            int64  `json:"id"`
	PeerID        int64  `json:"peer_id"`
	PeerName      string `json:"peer_name"`
	PeerAvatar    string `json:"peer_avatar"`
	LastMessage   string `json:"last_message"`
	LastMessageAt int64  `json:"last_message_at"`
	Unread        int64  `json:"unread"`
}

type ThreadListResponse struct {
	Threads     []*ThreadView `json:"threads"`
	TotalUnread int64         `json:"total_unread"`
}

type MessageListResponse struct {
	Messages []*MessageView `json:"messages"`
	HasMore  bool           `json:"has_more"`
}
