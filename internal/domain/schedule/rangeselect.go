package schedule

import (
	"time"

	"github.com/CoreFitApps/gym-scheduler/internal/httperr"
)

// ===============================
// Range Selection
// ===============================

// RangeSelector models the two-tap slot creation flow: the first tap on
// the time grid records a pending start, the second produces a slot if it
// lands strictly after the start. Any rejection resets the selector to
// awaiting-start.
type RangeSelector struct {
	grid    []string
	pending int // grid index of the pending start, -1 when awaiting start
}

const (
	GridStart = "07:00"
	GridEnd   = "23:00"
)

// NewRangeSelector builds a selector over a fixed grid from start to end
// inclusive, stepping by step.
func NewRangeSelector(start, end string, step time.Duration) (*RangeSelector, error) {
	s, err := ParseClock(start)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_start_time")
	}
	e, err := ParseClock(end)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_end_time")
	}
	if step <= 0 || !e.After(s) {
		return nil, httperr.ErrBusiness("invalid_grid")
	}

	var grid []string
	for cur := s; !cur.After(e); cur = cur.Add(step) {
		grid = append(grid, cur.Format(clockLayout))
	}

	return &RangeSelector{grid: grid, pending: -1}, nil
}

// NewDefaultRangeSelector is the editor's half-hour 07:00-23:00 grid.
func NewDefaultRangeSelector() *RangeSelector {
	sel, _ := NewRangeSelector(GridStart, GridEnd, 30*time.Minute)
	return sel
}

func (r *RangeSelector) Grid() []string {
	out := make([]string, len(r.grid))
	copy(out, r.grid)
	return out
}

// Pending reports the pending start time, if one is selected.
func (r *RangeSelector) Pending() (string, bool) {
	if r.pending < 0 {
		return "", false
	}
	return r.grid[r.pending], true
}

func (r *RangeSelector) Reset() {
	r.pending = -1
}

func (r *RangeSelector) indexOf(hm string) int {
	for i, g := range r.grid {
		if g == hm {
			return i
		}
	}
	return -1
}

// Tap registers one grid tap. It returns a slot only when a valid end tap
// completes the selection. An end tap at or before the pending start
// rejects the selection and resets the state.
func (r *RangeSelector) Tap(hm string) (*TimeSlot, error) {
	idx := r.indexOf(hm)
	if idx < 0 {
		return nil, httperr.ErrBusiness("time_not_on_grid")
	}

	if r.pending < 0 {
		r.pending = idx
		return nil, nil
	}

	startIdx := r.pending
	r.pending = -1

	if idx <= startIdx {
		return nil, httperr.ErrBusiness("invalid_time_range")
	}

	return &TimeSlot{
		StartTime: r.grid[startIdx],
		EndTime:   r.grid[idx],
	}, nil
}
