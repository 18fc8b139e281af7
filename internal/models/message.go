package models

import "time"

type Message struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	SenderID    uint `gorm:"index" json:"sender_id"`
	RecipientID uint `gorm:"index" json:"recipient_id"`

	Body   string     `gorm:"size:1000;not null" json:"body"`
	ReadAt *time.Time `json:"read_at"`

	CreatedAt time.Time `json:"created_at"`
}
