package models

import "time"

// Side-channel record informing the counter-party of a booking change.
// Fire-and-forget: writers never fail the flow that produced it.
type Notification struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index" json:"user_id"`

	Type    string `gorm:"size:50;not null" json:"type"`
	Title   string `gorm:"size:100" json:"title"`
	Message string `gorm:"size:500" json:"message"`
	Data    string `gorm:"type:text" json:"data"`
	IsRead  bool   `gorm:"default:false" json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}
