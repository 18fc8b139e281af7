package schedule

import (
	"testing"
	"time"

	"github.com/CoreFitApps/gym-scheduler/internal/httperr"
)

func hourGrid(t *testing.T) *RangeSelector {
	t.Helper()
	sel, err := NewRangeSelector(GridStart, GridEnd, time.Hour)
	if err != nil {
		t.Fatalf("NewRangeSelector: %v", err)
	}
	return sel
}

func TestTapPairCreatesSlot(t *testing.T) {
	sel := hourGrid(t)

	slot, err := sel.Tap("10:00")
	if err != nil {
		t.Fatalf("first tap: %v", err)
	}
	if slot != nil {
		t.Fatalf("first tap must not produce a slot")
	}
	if pending, ok := sel.Pending(); !ok || pending != "10:00" {
		t.Fatalf("pending start not recorded: %q %v", pending, ok)
	}

	slot, err = sel.Tap("12:00")
	if err != nil {
		t.Fatalf("second tap: %v", err)
	}
	if slot == nil || slot.StartTime != "10:00" || slot.EndTime != "12:00" {
		t.Fatalf("expected 10:00-12:00, got %+v", slot)
	}
	if _, ok := sel.Pending(); ok {
		t.Fatalf("selector must reset after a completed pair")
	}
}

func TestTapEndBeforeStartRejectsAndResets(t *testing.T) {
	sel := hourGrid(t)

	if _, err := sel.Tap("09:00"); err != nil {
		t.Fatalf("first tap: %v", err)
	}

	slot, err := sel.Tap("08:00")
	if !httperr.IsBusiness(err, "invalid_time_range") {
		t.Fatalf("expected invalid_time_range, got %v", err)
	}
	if slot != nil {
		t.Fatalf("rejected pair must not produce a slot")
	}
	if _, ok := sel.Pending(); ok {
		t.Fatalf("rejection must reset to awaiting-start")
	}
}

func TestTapSameTimeTwiceRejects(t *testing.T) {
	sel := hourGrid(t)

	if _, err := sel.Tap("09:00"); err != nil {
		t.Fatalf("first tap: %v", err)
	}

	slot, err := sel.Tap("09:00")
	if !httperr.IsBusiness(err, "invalid_time_range") {
		t.Fatalf("expected invalid_time_range, got %v", err)
	}
	if slot != nil {
		t.Fatalf("zero-length range must not produce a slot")
	}
	if _, ok := sel.Pending(); ok {
		t.Fatalf("selector must reset after rejection")
	}
}

func TestTapOffGrid(t *testing.T) {
	sel := hourGrid(t)

	if _, err := sel.Tap("09:30"); !httperr.IsBusiness(err, "time_not_on_grid") {
		t.Fatalf("expected time_not_on_grid, got %v", err)
	}
	if _, err := sel.Tap("06:00"); !httperr.IsBusiness(err, "time_not_on_grid") {
		t.Fatalf("expected time_not_on_grid, got %v", err)
	}

	// an off-grid tap must not consume the pending state
	if _, err := sel.Tap("09:00"); err != nil {
		t.Fatalf("tap after rejection: %v", err)
	}
	if pending, ok := sel.Pending(); !ok || pending != "09:00" {
		t.Fatalf("pending lost: %q %v", pending, ok)
	}
}

func TestGridBounds(t *testing.T) {
	sel := hourGrid(t)
	grid := sel.Grid()

	if grid[0] != "07:00" {
		t.Fatalf("grid starts at %q", grid[0])
	}
	if grid[len(grid)-1] != "23:00" {
		t.Fatalf("grid ends at %q", grid[len(grid)-1])
	}
	if len(grid) != 17 {
		t.Fatalf("hourly 07:00-23:00 grid should have 17 entries, got %d", len(grid))
	}
}

func TestDefaultGridIsHalfHour(t *testing.T) {
	sel := NewDefaultRangeSelector()
	grid := sel.Grid()

	if len(grid) != 33 {
		t.Fatalf("half-hour 07:00-23:00 grid should have 33 entries, got %d", len(grid))
	}
	if grid[1] != "07:30" {
		t.Fatalf("expected half-hour step, second entry is %q", grid[1])
	}
}
