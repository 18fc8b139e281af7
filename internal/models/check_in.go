package models

import "time"

type CheckIn struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	GymID  uint `json:"gym_id"`
	UserID uint `gorm:"index" json:"user_id"`

	CheckedInAt  time.Time  `json:"checked_in_at"`
	CheckedOutAt *time.Time `json:"checked_out_at"`
}
