package timezone

import (
	"testing"
	"time"
)

func TestClockRendersInGymTimezone(t *testing.T) {
	// 18:00 UTC is 15:00 in Sao Paulo (UTC-3 year-round)
	instant := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)

	if got := Clock(instant, "America/Sao_Paulo"); got != "15:00" {
		t.Fatalf("Clock in Sao Paulo = %q, want 15:00", got)
	}
	if got := Clock(instant, "UTC"); got != "18:00" {
		t.Fatalf("Clock in UTC = %q, want 18:00", got)
	}
}

func TestClockFallsBackOnBadTimezone(t *testing.T) {
	instant := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)

	if got := Clock(instant, "Not/AZone"); got != "18:00" {
		t.Fatalf("bad tz must fall back to UTC, got %q", got)
	}
	if got := Clock(instant, ""); got != "18:00" {
		t.Fatalf("empty tz must fall back to UTC, got %q", got)
	}
}

func TestLocationFallback(t *testing.T) {
	if loc := Location("Not/AZone"); loc.String() != "UTC" {
		t.Fatalf("Location fallback = %q", loc.String())
	}
	if !IsValid("America/Sao_Paulo") || IsValid("") {
		t.Fatalf("IsValid misclassified")
	}
}
