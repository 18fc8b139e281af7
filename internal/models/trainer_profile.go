package models

import "time"

// TrainerProfile owns the availability the schedule editor works on.
// Availability is the legacy flat slot array (no day tag, see
// schedule.SplitAcrossWeek); Builder keeps the richer day-keyed slots.
type TrainerProfile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Bio             string `gorm:"size:500" json:"bio"`
	Specializations string `gorm:"size:255" json:"specializations"`
	ExperienceYears int    `json:"experience_years"`
	HourlyRate      float64 `json:"hourly_rate"`

	IsAvailable  bool   `gorm:"default:true" json:"is_available"`
	Availability string `gorm:"type:text" json:"availability"`
	Builder      string `gorm:"type:text" json:"builder"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
