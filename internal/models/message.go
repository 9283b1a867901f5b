package models

import (
	"time"

	"gorm.io/gorm"
)

// Message is a direct message between a client and a staff member.
type Message struct {
	gorm.Model
	SenderID    uint       `gorm:"not null;index" json:"sender_id"`
	Sender      User       `json:"-"`
	RecipientID uint       `gorm:"not null;index" json:"recipient_id"`
	Recipient   User       `json:"-"`
	Content     string     `gorm:"not null" json:"content"`
	ReadAt      *time.Time `json:"read_at"`
}
