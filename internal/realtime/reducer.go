package realtime

import "github.com/CoreFitApps/gym-scheduler/internal/domain/schedule"

// The editor applies pushed profile changes through a pure reducer so
// the "do not clobber unsaved edits" rule is a testable precondition
// instead of a flag check buried in a callback.

const TableTrainerProfiles = "trainer_profiles"
const TableBookings = "bookings"
const TableNotifications = "notifications"

// ProfileChange is the payload published for trainer_profiles events.
type ProfileChange struct {
	TrainerID    uint   `json:"trainer_id"`
	Availability string `json:"availability"`
	IsAvailable  bool   `json:"is_available"`
}

// EditorState is the availability editor's view of the world.
type EditorState struct {
	Week        schedule.Week
	IsAvailable bool
	Dirty       bool
}

// ShouldApply is the precondition for applying a pushed event: local
// unsaved edits always win over a push.
func ShouldApply(dirty bool, ev Event) bool {
	return !dirty
}

// Reduce returns the state after ev. Events that fail the precondition,
// target another table, or carry an undecodable payload leave the state
// unchanged.
func Reduce(st EditorState, ev Event) EditorState {
	if !ShouldApply(st.Dirty, ev) {
		return st
	}
	if ev.Table != TableTrainerProfiles {
		return st
	}

	change, ok := ev.Payload.(ProfileChange)
	if !ok {
		return st
	}

	flat, err := schedule.DecodeFlat(change.Availability)
	if err != nil {
		return st
	}

	return EditorState{
		Week:        schedule.SplitAcrossWeek(flat),
		IsAvailable: change.IsAvailable,
		Dirty:       false,
	}
}
