package models

import "time"

type Achievement struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index" json:"user_id"`

	Code     string    `gorm:"size:50;not null" json:"code"`
	Title    string    `gorm:"size:100" json:"title"`
	Points   int       `json:"points"`
	EarnedAt time.Time `json:"earned_at"`
}
