package projections

import (
	"context"
	"errors"
	"testing"
	"time"

	"shiftreg/internal/adapters/storage/status"
	"shiftreg/internal/domain/roles"
	"shiftreg/internal/domain/roster"
	"shiftreg/internal/domain/week"
)

var anchor = time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)

func fixedAnchor() time.Time { return anchor }

type mockScheduleStores struct {
	rosters map[string]roster.WeekRoster
	roles   map[string]roles.WeekRoles
	st      status.Status
}

func (m *mockScheduleStores) GetWeek(_ context.Context, weekID string) (roster.WeekRoster, error) {
	return m.rosters[weekID], nil
}

func (m *mockScheduleStores) Get(_ context.Context) (status.Status, error) {
	return m.st, nil
}

type mockRolesOnly struct{ m *mockScheduleStores }

func (r mockRolesOnly) GetWeek(_ context.Context, weekID string) (roles.WeekRoles, error) {
	return r.m.roles[weekID], nil
}

func scheduleDeps(m *mockScheduleStores) GetScheduleDeps {
	return GetScheduleDeps{RosterStore: m, RolesStore: mockRolesOnly{m}, StatusStore: m}
}

func TestQueryGetSchedule_Grid(t *testing.T) {
	weekID := week.Current(week.Window(anchor)).ID
	m := &mockScheduleStores{
		rosters: map[string]roster.WeekRoster{
			weekID: {
				"day0-shift0": {"Anh", "Binh", "Chi"},
				"day2-shift1": {"Dao"},
			},
		},
		roles: map[string]roles.WeekRoles{
			weekID: {
				"day0": {
					KeyKeeper:  "Anh",
					KetKeepers: roles.KetKeepers{Shift0: "Binh"},
				},
			},
		},
		st: status.Status{IsOpen: true, SelectedWeek: weekID},
	}

	view, err := QueryGetSchedule(context.Background(), weekID, fixedAnchor, scheduleDeps(m))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Cells) != 21 {
		t.Fatalf("cells = %d, want 21", len(view.Cells))
	}
	if !view.IsOpen || !view.Selected {
		t.Errorf("flags = %+v", view)
	}
	if len(view.Days) != 7 || view.Days[0].Name != "Thứ 2" {
		t.Errorf("days = %+v", view.Days)
	}

	cell := view.Cells[0]
	if cell.Slot != "day0-shift0" || !cell.Full {
		t.Errorf("cell 0 = %+v", cell)
	}
	if len(cell.Entries) != 3 {
		t.Fatalf("entries = %+v", cell.Entries)
	}
	// Anh holds the key, Binh holds the shift-0 safe.
	if got := cell.Entries[0].Tags; len(got) != 1 || got[0] != "key" {
		t.Errorf("Anh tags = %v", got)
	}
	if got := cell.Entries[1].Tags; len(got) != 1 || got[0] != "két" {
		t.Errorf("Binh tags = %v", got)
	}
	if got := cell.Entries[2].Tags; len(got) != 0 {
		t.Errorf("Chi tags = %v", got)
	}

	// day2-shift1 is cell index 2*3+1.
	cell = view.Cells[7]
	if cell.Slot != "day2-shift1" || cell.Full || len(cell.Entries) != 1 {
		t.Errorf("cell = %+v", cell)
	}
}

// TestQueryGetSchedule_KeyTagOnlyShiftZero pins that the key tag never renders
// on later shifts even when the key keeper works them.
func TestQueryGetSchedule_KeyTagOnlyShiftZero(t *testing.T) {
	weekID := week.Current(week.Window(anchor)).ID
	m := &mockScheduleStores{
		rosters: map[string]roster.WeekRoster{
			weekID: {
				"day0-shift0": {"Anh"},
				"day0-shift1": {"Anh"},
			},
		},
		roles: map[string]roles.WeekRoles{
			weekID: {"day0": {KeyKeeper: "Anh"}},
		},
	}

	view, err := QueryGetSchedule(context.Background(), weekID, fixedAnchor, scheduleDeps(m))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := view.Cells[0].Entries[0].Tags; len(got) != 1 || got[0] != "key" {
		t.Errorf("shift 0 tags = %v", got)
	}
	if got := view.Cells[1].Entries[0].Tags; len(got) != 0 {
		t.Errorf("shift 1 tags = %v, want none", got)
	}
}

func TestQueryGetSchedule_UnknownWeek(t *testing.T) {
	m := &mockScheduleStores{}
	_, err := QueryGetSchedule(context.Background(), "week-2020-01-06", fixedAnchor, scheduleDeps(m))
	if !errors.Is(err, ErrWeekNotVisible) {
		t.Errorf("err = %v, want ErrWeekNotVisible", err)
	}
}

func TestQueryGetSchedule_OpenFlagScopedToSelectedWeek(t *testing.T) {
	window := week.Window(anchor)
	selected := week.Current(window).ID
	other := window[0].ID
	m := &mockScheduleStores{st: status.Status{IsOpen: true, SelectedWeek: selected}}

	view, err := QueryGetSchedule(context.Background(), other, fixedAnchor, scheduleDeps(m))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.IsOpen || view.Selected {
		t.Errorf("unselected week reported open: %+v", view)
	}
}

func TestQueryGetWeekWindow(t *testing.T) {
	window := week.Window(anchor)
	selected := window[3].ID
	m := &mockScheduleStores{st: status.Status{IsOpen: true, SelectedWeek: selected}}

	view, err := QueryGetWeekWindow(context.Background(), fixedAnchor, scheduleDeps(m))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Weeks) != 8 {
		t.Fatalf("weeks = %d, want 8", len(view.Weeks))
	}
	var current, marked int
	for _, w := range view.Weeks {
		if w.IsCurrent {
			current++
		}
		if w.Selected {
			marked++
			if w.ID != selected {
				t.Errorf("wrong week marked selected: %+v", w)
			}
		}
	}
	if current != 1 || marked != 1 {
		t.Errorf("current=%d selected=%d", current, marked)
	}
}
