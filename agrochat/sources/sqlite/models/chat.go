package models

import (
	"time"
)

// ChatSession is a named conversation thread. Rows are created lazily on
// the first chat turn and never deleted or updated afterwards.
type ChatSession struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SessionID string    `json:"session_id" gorm:"type:varchar(255);uniqueIndex;not null"`
	Language  string    `json:"language" gorm:"type:varchar(50)"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
}

func (ChatSession) TableName() string { return "chat_sessions" }

// ChatMessage is append-only; insertion order is the conversation order.
type ChatMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SessionID string    `json:"session_id" gorm:"type:varchar(255);index;not null"`
	Role      string    `json:"role" gorm:"type:varchar(50);not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
}

func (ChatMessage) TableName() string { return "chat_messages" }
