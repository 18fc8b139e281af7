package dto

import "time"

type BookingListDTO struct {
	ID              uint      `json:"id"`
	SessionDate     string    `json:"session_date"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	MemberName      string    `json:"member_name"`
	TrainerName     string    `json:"trainer_name"`
	Notes           string    `json:"notes"`
}
