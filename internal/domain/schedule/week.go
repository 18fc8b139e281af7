package schedule

import "github.com/CoreFitApps/gym-scheduler/internal/httperr"

// ===============================
// Weekly Availability
// ===============================

const DaysPerWeek = 7

// Week holds the editor's seven day-buckets, Monday first.
type Week [DaysPerWeek][]TimeSlot

func NewWeek() Week {
	var w Week
	for d := range w {
		w[d] = []TimeSlot{}
	}
	return w
}

type SlotField string

const (
	FieldStartTime SlotField = "start_time"
	FieldEndTime   SlotField = "end_time"
)

// AddSlot appends the default window to one day. Other days are untouched.
func (w *Week) AddSlot(day int) error {
	if day < 0 || day >= DaysPerWeek {
		return httperr.ErrBusiness("invalid_day")
	}
	w[day] = append(w[day], TimeSlot{
		StartTime: DefaultSlotStart,
		EndTime:   DefaultSlotEnd,
	})
	return nil
}

// UpdateSlot mutates a single field of a single slot.
func (w *Week) UpdateSlot(day, idx int, field SlotField, value string) error {
	if day < 0 || day >= DaysPerWeek {
		return httperr.ErrBusiness("invalid_day")
	}
	if idx < 0 || idx >= len(w[day]) {
		return httperr.ErrBusiness("invalid_slot_index")
	}

	switch field {
	case FieldStartTime:
		w[day][idx].StartTime = value
	case FieldEndTime:
		w[day][idx].EndTime = value
	default:
		return httperr.ErrBusiness("invalid_slot_field")
	}
	return nil
}

// RemoveSlot deletes the slot at idx, shifting later slots down.
// Out-of-range indices are a no-op, never a panic.
func (w *Week) RemoveSlot(day, idx int) {
	if day < 0 || day >= DaysPerWeek {
		return
	}
	if idx < 0 || idx >= len(w[day]) {
		return
	}
	w[day] = append(w[day][:idx], w[day][idx+1:]...)
}

// AppendSlot adds an already-built slot to a day (range-selector output).
func (w *Week) AppendSlot(day int, slot TimeSlot) error {
	if day < 0 || day >= DaysPerWeek {
		return httperr.ErrBusiness("invalid_day")
	}
	w[day] = append(w[day], slot)
	return nil
}

func (w Week) SlotCount() int {
	n := 0
	for d := range w {
		n += len(w[d])
	}
	return n
}

// Validate checks every slot pair. It does not check cross-slot overlap.
func (w Week) Validate() error {
	for d := range w {
		for _, s := range w[d] {
			if err := s.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Flatten concatenates the day-buckets Monday through Sunday into the
// stored array form. The day assignment is not recorded alongside the
// slots, so Flatten is lossy; see SplitAcrossWeek.
func (w Week) Flatten() []TimeSlot {
	out := []TimeSlot{}
	for d := range w {
		out = append(out, w[d]...)
	}
	return out
}

// SplitAcrossWeek redistributes a flat slot array over seven days,
// ceil(n/7) slots per day in storage order. This is a display heuristic,
// not a reconstruction: the flat form carries no day tag, so any week
// with unequal per-day counts will not round-trip through
// Flatten/SplitAcrossWeek. Kept as-is pending a schema that stores the
// day alongside each slot.
func SplitAcrossWeek(flat []TimeSlot) Week {
	w := NewWeek()
	if len(flat) == 0 {
		return w
	}

	perDay := (len(flat) + DaysPerWeek - 1) / DaysPerWeek

	for i, s := range flat {
		day := i / perDay
		if day >= DaysPerWeek {
			day = DaysPerWeek - 1
		}
		w[day] = append(w[day], s)
	}
	return w
}
