package models

import "time"

type Message struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id"`
	ThreadID  int64     `gorm:"column:thread_id;not null;index:idx_thread_created" json:"thread_id"`
	SenderID  int64     `gorm:"column:sender_id;not null" json:"sender_id"`
	Content   string    `gorm:"column:content;type:varchar(2000);not null" json:"content"`
	IsRead    bool      `gorm:"column:is_read;not null;default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_thread_created" json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}
