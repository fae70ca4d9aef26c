package store

import (
	"time"

	"gorm.io/gorm"
)

// Chat is a persisted conversation with its per-chat settings. This replaces
// the browser-local chat list the frontend used to keep in localStorage.
type Chat struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Title     string         `gorm:"not null" json:"title"`
	Mode      string         `gorm:"default:'general'" json:"mode"`
	Tone      string         `gorm:"default:'professional'" json:"tone"`
	Length    string         `gorm:"default:'medium'" json:"length"`
	Messages  []ChatMessage  `gorm:"constraint:OnDelete:CASCADE" json:"messages,omitempty"`
}

// ChatMessage is one stored turn of a chat.
type ChatMessage struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	ChatID    uint      `gorm:"not null;index" json:"chat_id"`
	Role      string    `gorm:"not null" json:"role"` // "user" or "assistant"
	Content   string    `gorm:"type:text;not null" json:"content"`
}

// SchemaInfo is the versioned schema key for the chat store. Exactly one row
// exists; Migrate bumps it after applying forward migrations.
type SchemaInfo struct {
	ID        uint `gorm:"primarykey"`
	Version   int  `gorm:"not null"`
	UpdatedAt time.Time
}
