package projections

import (
	"context"

	"shiftreg/internal/adapters/storage/status"
	"shiftreg/internal/domain/roles"
	"shiftreg/internal/domain/roster"
	"shiftreg/internal/domain/week"
)

// ScheduleRosterStore defines the store interface needed by this projection.
type ScheduleRosterStore interface {
	GetWeek(ctx context.Context, weekID string) (roster.WeekRoster, error)
}

// ScheduleRolesStore defines the store interface needed by this projection.
type ScheduleRolesStore interface {
	GetWeek(ctx context.Context, weekID string) (roles.WeekRoles, error)
}

// ScheduleStatusStore defines the store interface needed by this projection.
type ScheduleStatusStore interface {
	Get(ctx context.Context) (status.Status, error)
}

// GetScheduleDeps holds dependencies for the projection.
type GetScheduleDeps struct {
	RosterStore ScheduleRosterStore
	RolesStore  ScheduleRolesStore
	StatusStore ScheduleStatusStore
}

// CellEntry is one registered name inside a grid cell, with its role tags.
type CellEntry struct {
	Name string   `json:"name"`
	Tags []string `json:"tags,omitempty"`
}

// ScheduleCell is one (day, shift) cell of the grid.
type ScheduleCell struct {
	Slot    string      `json:"slot"`
	Day     int         `json:"day"`
	Shift   int         `json:"shift"`
	Entries []CellEntry `json:"entries"`
	Full    bool        `json:"full"`
}

// ScheduleView is the whole grid for one week.
type ScheduleView struct {
	WeekID   string         `json:"weekId"`
	Label    string         `json:"label"`
	IsOpen   bool           `json:"isOpen"`
	Selected bool           `json:"selected"`
	Days     []week.Day     `json:"days"`
	Shifts   []week.Shift   `json:"shifts"`
	Cells    []ScheduleCell `json:"cells"`
}

// QueryGetSchedule assembles the grid for one week of the window: 7 days, 3
// shifts, 21 cells, each with its names, role tags, and fullness flag.
// POST: Cells is always 21 entries in day-major order
func QueryGetSchedule(ctx context.Context, weekID string, now AnchorFunc, deps GetScheduleDeps) (ScheduleView, error) {
	window := week.Window(now())
	w, ok := week.Find(window, weekID)
	if !ok {
		return ScheduleView{}, ErrWeekNotVisible
	}

	st, err := deps.StatusStore.Get(ctx)
	if err != nil {
		return ScheduleView{}, err
	}
	wr, err := deps.RosterStore.GetWeek(ctx, weekID)
	if err != nil {
		return ScheduleView{}, err
	}
	wroles, err := deps.RolesStore.GetWeek(ctx, weekID)
	if err != nil {
		return ScheduleView{}, err
	}

	view := ScheduleView{
		WeekID:   w.ID,
		Label:    w.Label,
		IsOpen:   st.IsOpen && st.SelectedWeek == weekID,
		Selected: st.SelectedWeek == weekID,
		Days:     week.Days(w),
		Shifts:   week.Shifts,
	}

	for day := 0; day < week.DaysPerWeek; day++ {
		dayRoles := wroles[roles.DayKey(day)]
		for shift := range week.Shifts {
			slot := week.SlotKey(day, shift)
			names := wr[slot]
			entries := make([]CellEntry, 0, len(names))
			for _, name := range names {
				entries = append(entries, CellEntry{
					Name: name,
					Tags: dayRoles.TagsFor(name, shift),
				})
			}
			view.Cells = append(view.Cells, ScheduleCell{
				Slot:    slot,
				Day:     day,
				Shift:   shift,
				Entries: entries,
				Full:    len(names) >= roster.MaxPeople,
			})
		}
	}
	return view, nil
}
