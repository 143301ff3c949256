package projections

import (
	"context"
	"errors"
	"time"

	"shiftreg/internal/domain/week"
)

// AnchorFunc supplies the instant the rolling window is anchored on.
// Injectable so tests pin the window.
type AnchorFunc func() time.Time

// ErrWeekNotVisible is returned for week IDs outside the rolling window.
var ErrWeekNotVisible = errors.New("tuần không hợp lệ")

// WeekOption is one selectable week.
type WeekOption struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	IsCurrent bool   `json:"isCurrent"`
	Selected  bool   `json:"selected"`
}

// WindowView lists the selectable weeks with the system state.
type WindowView struct {
	Weeks        []WeekOption `json:"weeks"`
	IsOpen       bool         `json:"isOpen"`
	SelectedWeek string       `json:"selectedWeek"`
}

// QueryGetWeekWindow builds the week picker: the rolling window with the
// calendar-current and admin-selected weeks marked.
func QueryGetWeekWindow(ctx context.Context, now AnchorFunc, deps GetScheduleDeps) (WindowView, error) {
	st, err := deps.StatusStore.Get(ctx)
	if err != nil {
		return WindowView{}, err
	}

	window := week.Window(now())
	view := WindowView{
		Weeks:        make([]WeekOption, 0, len(window)),
		IsOpen:       st.IsOpen,
		SelectedWeek: st.SelectedWeek,
	}
	for _, w := range window {
		view.Weeks = append(view.Weeks, WeekOption{
			ID:        w.ID,
			Label:     w.Label,
			IsCurrent: w.IsCurrent,
			Selected:  w.ID == st.SelectedWeek,
		})
	}
	return view, nil
}
