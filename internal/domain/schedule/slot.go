package schedule

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/CoreFitApps/gym-scheduler/internal/httperr"
)

// ===============================
// Time Slots
// ===============================

// TimeSlot is one contiguous window in which a trainer accepts bookings.
// Times are wall-clock "15:04" strings, interpreted in the gym timezone.
type TimeSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

const (
	DefaultSlotStart = "09:00"
	DefaultSlotEnd   = "10:00"

	clockLayout = "15:04"
)

func ParseClock(hm string) (time.Time, error) {
	return time.Parse(clockLayout, hm)
}

// Validate rejects a slot whose end is not strictly after its start.
// Cross-slot overlap within a day is intentionally not checked here; the
// stored format never enforced it and the editor only validates pairs.
func (s TimeSlot) Validate() error {
	start, err := ParseClock(s.StartTime)
	if err != nil {
		return httperr.ErrBusiness("invalid_start_time")
	}
	end, err := ParseClock(s.EndTime)
	if err != nil {
		return httperr.ErrBusiness("invalid_end_time")
	}
	if !end.After(start) {
		return httperr.ErrBusiness("invalid_time_range")
	}
	return nil
}

// EncodeFlat / DecodeFlat are the storage form of the availability column:
// a single JSON array with no day information attached.

func EncodeFlat(slots []TimeSlot) (string, error) {
	b, err := json.Marshal(slots)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func DecodeFlat(raw string) ([]TimeSlot, error) {
	if raw == "" {
		return []TimeSlot{}, nil
	}
	var slots []TimeSlot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// ===============================
// Builder Slots
// ===============================

type SlotType string

const (
	SlotSession      SlotType = "session"
	SlotBreak        SlotType = "break"
	SlotAvailable    SlotType = "available"
	SlotConsultation SlotType = "consultation"
	SlotGroup        SlotType = "group"
)

func (t SlotType) Valid() bool {
	switch t {
	case SlotSession, SlotBreak, SlotAvailable, SlotConsultation, SlotGroup:
		return true
	}
	return false
}

type Recurrence struct {
	Pattern string `json:"pattern"`
	Days    []int  `json:"days"`
	EndDate string `json:"end_date,omitempty"`
}

// BuilderSlot is the richer schedule-builder record. Unlike the flat
// TimeSlot array it keeps its day assignment in storage (BuilderWeek).
type BuilderSlot struct {
	ID              string      `json:"id"`
	Start           string      `json:"start"`
	End             string      `json:"end"`
	DurationMinutes int         `json:"duration_minutes"`
	Type            SlotType    `json:"type"`
	Label           string      `json:"label,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	MaxClients      int         `json:"max_clients,omitempty"`
	Recurring       *Recurrence `json:"recurring,omitempty"`
	IsBlocked       bool        `json:"is_blocked,omitempty"`
}

func NewBuilderSlot(start, end string, typ SlotType) (BuilderSlot, error) {
	if !typ.Valid() {
		return BuilderSlot{}, httperr.ErrBusiness("invalid_slot_type")
	}
	if err := (TimeSlot{StartTime: start, EndTime: end}).Validate(); err != nil {
		return BuilderSlot{}, err
	}

	s, _ := ParseClock(start)
	e, _ := ParseClock(end)

	return BuilderSlot{
		ID:              uuid.NewString(),
		Start:           start,
		End:             end,
		DurationMinutes: int(e.Sub(s) / time.Minute),
		Type:            typ,
	}, nil
}

// BuilderWeek maps weekday index (0 = Monday) to that day's builder slots.
type BuilderWeek map[int][]BuilderSlot

func EncodeBuilder(w BuilderWeek) (string, error) {
	b, err := json.Marshal(w)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func DecodeBuilder(raw string) (BuilderWeek, error) {
	if raw == "" {
		return BuilderWeek{}, nil
	}
	var w BuilderWeek
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		return nil, err
	}
	for day, slots := range w {
		if day < 0 || day >= DaysPerWeek {
			return nil, httperr.ErrBusiness("invalid_day")
		}
		for _, s := range slots {
			if !s.Type.Valid() {
				return nil, httperr.ErrBusiness("invalid_slot_type")
			}
		}
	}
	return w, nil
}
