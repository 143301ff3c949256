package week

import (
	"testing"
	"time"
)

// TestWindow_Size verifies the window spans 2 weeks back through 5 ahead.
func TestWindow_Size(t *testing.T) {
	now := time.Date(2024, 6, 5, 14, 30, 0, 0, time.UTC) // a Wednesday
	weeks := Window(now)
	if len(weeks) != 8 {
		t.Fatalf("window size = %d, want 8", len(weeks))
	}
}

// TestWindow_ExactlyOneCurrent verifies the current-week invariant.
func TestWindow_ExactlyOneCurrent(t *testing.T) {
	weeks := Window(time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC))
	current := 0
	for _, w := range weeks {
		if w.IsCurrent {
			current++
		}
	}
	if current != 1 {
		t.Errorf("weeks with IsCurrent = %d, want 1", current)
	}
}

// TestWindow_MondayAligned verifies every week starts on a Monday and weeks
// are contiguous.
func TestWindow_MondayAligned(t *testing.T) {
	weeks := Window(time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC))
	for i, w := range weeks {
		if w.StartDate.Weekday() != time.Monday {
			t.Errorf("week %d starts on %v, want Monday", i, w.StartDate.Weekday())
		}
		if !w.EndDate.Equal(w.StartDate.AddDate(0, 0, 6)) {
			t.Errorf("week %d end = %v, want start+6d", i, w.EndDate)
		}
		if i > 0 && !w.StartDate.Equal(weeks[i-1].StartDate.AddDate(0, 0, 7)) {
			t.Errorf("week %d is not contiguous with week %d", i, i-1)
		}
	}
}

// TestMondayOf_SundayBelongsToPrecedingMonday verifies the Sunday remap: a
// Sunday reference date falls in the week whose Monday is six days earlier.
func TestMondayOf_SundayBelongsToPrecedingMonday(t *testing.T) {
	sunday := time.Date(2024, 6, 9, 10, 0, 0, 0, time.UTC)
	monday := MondayOf(sunday)
	want := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	if !monday.Equal(want) {
		t.Errorf("MondayOf(sunday) = %v, want %v", monday, want)
	}
}

// TestWindow_StableIDs verifies two independently generated windows agree on
// IDs for any instant inside the same week.
func TestWindow_StableIDs(t *testing.T) {
	a := Window(time.Date(2024, 6, 3, 0, 1, 0, 0, time.UTC))  // Monday morning
	b := Window(time.Date(2024, 6, 9, 23, 59, 0, 0, time.UTC)) // Sunday night
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Errorf("window mismatch at %d: %q vs %q", i, a[i].ID, b[i].ID)
		}
	}
	if cur := Current(a); cur.ID != "week-2024-06-03" {
		t.Errorf("current week ID = %q, want week-2024-06-03", cur.ID)
	}
}

// TestDays_MondayFirst verifies index 0 is Monday and dates are zero-padded.
func TestDays_MondayFirst(t *testing.T) {
	weeks := Window(time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC))
	days := Days(Current(weeks))
	if len(days) != 7 {
		t.Fatalf("len(days) = %d, want 7", len(days))
	}
	if days[0].Name != "Thứ 2" {
		t.Errorf("days[0].Name = %q, want Thứ 2", days[0].Name)
	}
	if days[6].Name != "Chủ nhật" {
		t.Errorf("days[6].Name = %q, want Chủ nhật", days[6].Name)
	}
	if days[0].Date != "03/06" {
		t.Errorf("days[0].Date = %q, want 03/06", days[0].Date)
	}
}

// TestSlotKeys covers key format, validity bounds, and the 21-slot count.
func TestSlotKeys(t *testing.T) {
	if got := SlotKey(0, 0); got != "day0-shift0" {
		t.Errorf("SlotKey(0,0) = %q", got)
	}
	if got := SlotKey(6, 2); got != "day6-shift2" {
		t.Errorf("SlotKey(6,2) = %q", got)
	}
	if ValidSlot(7, 0) || ValidSlot(0, 3) || ValidSlot(-1, 0) || ValidSlot(0, -1) {
		t.Error("out-of-range slot reported valid")
	}
	if keys := AllSlotKeys(); len(keys) != 21 {
		t.Errorf("len(AllSlotKeys()) = %d, want 21", len(keys))
	}
}

// TestWindow_LabelFormat verifies the unpadded label layout.
func TestWindow_LabelFormat(t *testing.T) {
	weeks := Window(time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC))
	cur := Current(weeks)
	if cur.Label != "3/6 - 9/6/2024" {
		t.Errorf("label = %q, want 3/6 - 9/6/2024", cur.Label)
	}
}
