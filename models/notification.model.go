package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Notification is addressed to a single user. Only the recipient can mark
// it read; senders never mutate it after creation.
type Notification struct {
	gorm.Model
	UserID    uint           `json:"user_id" gorm:"index;not null"`
	SenderID  *uint          `json:"sender_id"`                           // nil for system notifications
	Type      string         `json:"type" gorm:"default:'SYSTEM'"`        // SYSTEM, COURSE, PAYMENT, CERTIFICATE, ANNOUNCEMENT
	Category  string         `json:"category" gorm:"default:'GENERAL'"`   // GENERAL, ENROLLMENT, PROGRESS, REVIEW
	Priority  string         `json:"priority" gorm:"default:'NORMAL'"`    // LOW, NORMAL, HIGH
	Title     string         `json:"title"`
	Message   string         `json:"message" gorm:"type:text"`
	Payload   datatypes.JSON `json:"payload"`
	IsRead    bool           `json:"is_read" gorm:"default:false"`
	ReadAt    *time.Time     `json:"read_at"`
	IsDeleted bool           `gorm:"default:false"`
}
