package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	GymID uint `json:"gym_id"`
	Gym   Gym  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"gym"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	TrainerID uint `json:"trainer_id"`
	Trainer   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"trainer"`

	SessionDate     string    `gorm:"size:10" json:"session_date"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	AcceptedAt  *time.Time `json:"accepted_at"`
	DeclinedAt  *time.Time `json:"declined_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
