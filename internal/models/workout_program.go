package models

import "time"

type WorkoutProgram struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	GymID     uint `json:"gym_id"`
	TrainerID uint `json:"trainer_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Level       string `gorm:"size:20" json:"level"`
	Weeks       int    `json:"weeks"`
	Exercises   string `gorm:"type:text" json:"exercises"`
	Active      bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
