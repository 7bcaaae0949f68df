package models

import "time"

// MessageThread 私信会话
// 参与者按 user_a_id < user_b_id 规范化存储，唯一键 uk_pair
// unread_a / unread_b 分别是两个参与者各自的未读数
type MessageThread struct {
	ID            int64     `gorm:"column:id;primary_key" json:"id"`
	UserAID       int64     `gorm:"column:user_a_id;not null;uniqueIndex:uk_pair,priority:1" json:"user_a_id"`
	UserBID       int64     `gorm:"column:user_b_id;not null;uniqueIndex:uk_pair,priority:2" json:"user_b_id"`
	LastMessage   string    `gorm:"column:last_message;type:varchar(500);not null;default:''" json:"last_message"`
	LastMessageAt int64     `gorm:"column:last_message_at;not null;default:0" json:"last_message_at"`
	UnreadA       int64     `gorm:"column:unread_a;not null;default:0" json:"unread_a"`
	UnreadB       int64     `gorm:"column:unread_b;not null;default:0" json:"unread_b"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (MessageThread) TableName() string {
	return "message_threads"
}

// PeerOf 返回会话中另一方的用户ID，userID 不在会话内返回 0
func (t *MessageThread) PeerOf(userID int64) int64 {
	switch userID {
	case t.UserAID:
		return t.UserBID
	case t.UserBID:
		return t.UserAID
	default:
		return 0
	}
}

// UnreadOf 返回 userID 在该会话中的未读数
func (t *MessageThread) UnreadOf(userID int64) int64 {
	switch userID {
	case t.UserAID:
		return t.UnreadA
	case t.UserBID:
		return t.UnreadB
	default:
		return 0
	}
}

// NormalizePair 规范化会话参与者顺序，保证 A_B 与 B_A 落在同一行
func NormalizePair(uid1, uid2 int64) (int64, int64) {
	if uid1 < uid2 {
		return uid1, uid2
	}
	return uid2, uid1
}
