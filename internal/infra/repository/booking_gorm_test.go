package repository

import (
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"github.com/CoreFitApps/gym-scheduler/internal/domain/schedule"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

func conflictSQL(t *testing.T, excludeID uint) (string, []any) {
	t.Helper()

	db := dryRunDB(t)
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	var ids []uint
	tx := conflictScan(db, 1, start, end, excludeID).Pluck("id", &ids)
	if tx.Error != nil {
		t.Fatalf("building conflict scan: %v", tx.Error)
	}

	return tx.Statement.SQL.String(), tx.Statement.Vars
}

// The row lock must ride on the id scan, never on an aggregate: Postgres
// rejects FOR UPDATE on count queries outright.
func TestConflictScanLocksRowsNotAggregate(t *testing.T) {
	sql, _ := conflictSQL(t, 0)
	lower := strings.ToLower(sql)

	if strings.Contains(lower, "count(") {
		t.Fatalf("conflict scan aggregates under a row lock: %s", sql)
	}
	if !strings.Contains(lower, "for update") {
		t.Fatalf("conflict scan lost its row lock: %s", sql)
	}
	if !strings.Contains(lower, "trainer_id = ?") {
		t.Fatalf("conflict scan not scoped to the trainer: %s", sql)
	}
	if !strings.Contains(lower, "status in ('pending', 'accepted')") {
		t.Fatalf("conflict scan must hold pending and accepted slots: %s", sql)
	}
}

func TestConflictScanExcludesRescheduledBooking(t *testing.T) {
	sql, vars := conflictSQL(t, 42)

	if !strings.Contains(sql, "id <> ?") {
		t.Fatalf("exclusion filter missing: %s", sql)
	}

	found := false
	for _, v := range vars {
		if id, ok := v.(uint); ok && id == 42 {
			found = true
		}
	}
	if !found {
		t.Fatalf("excluded id not bound: %v", vars)
	}

	sql, _ = conflictSQL(t, 0)
	if strings.Contains(sql, "<>") {
		t.Fatalf("zero excludeID must not filter: %s", sql)
	}
}

func TestWindowWithinSlots(t *testing.T) {
	slots := []schedule.TimeSlot{
		{StartTime: "08:00", EndTime: "12:00"},
		{StartTime: "14:00", EndTime: "18:00"},
	}

	at := func(h, m int) time.Time {
		return time.Date(2026, 3, 10, h, m, 0, 0, time.UTC)
	}

	if !windowWithinSlots(slots, at(9, 0), at(10, 0)) {
		t.Fatalf("window inside a slot rejected")
	}
	if !windowWithinSlots(slots, at(14, 0), at(18, 0)) {
		t.Fatalf("window filling a slot exactly rejected")
	}
	if windowWithinSlots(slots, at(12, 0), at(13, 0)) {
		t.Fatalf("window in the gap accepted")
	}
	if windowWithinSlots(slots, at(11, 30), at(12, 30)) {
		t.Fatalf("window straddling a slot edge accepted")
	}
	if windowWithinSlots(nil, at(9, 0), at(10, 0)) {
		t.Fatalf("empty availability accepted")
	}
}

func TestWindowWithinSlotsSkipsMalformed(t *testing.T) {
	slots := []schedule.TimeSlot{
		{StartTime: "25:00", EndTime: "26:00"},
		{StartTime: "10:00", EndTime: "09:00"},
		{StartTime: "08:00", EndTime: "12:00"},
	}

	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	if !windowWithinSlots(slots, start, start.Add(time.Hour)) {
		t.Fatalf("malformed slots must be skipped, not fail the check")
	}
}
