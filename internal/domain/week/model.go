package week

import (
	"fmt"
	"time"
)

// Window bounds, in whole weeks relative to the current week.
const (
	WindowBefore = 2
	WindowAfter  = 5
)

// DaysPerWeek is always 7; slots are addressed day 0 (Monday) .. day 6 (Sunday).
const DaysPerWeek = 7

// Week is one selectable week in the rolling window. Weeks are Monday-aligned
// and identified by the Monday's ISO date so that independently generated
// windows agree on IDs.
type Week struct {
	ID        string
	Label     string
	StartDate time.Time
	EndDate   time.Time
	IsCurrent bool
}

// Day describes one column of the grid.
type Day struct {
	Name string // localized weekday label
	Date string // DD/MM
}

// Shift is one row of the grid. The catalogue is fixed and never persisted.
type Shift struct {
	Name string
	Time string
}

// Shifts is the static shift catalogue.
var Shifts = []Shift{
	{Name: "Ca 1", Time: "08:00 - 13:00"},
	{Name: "Ca 2", Time: "12:00 - 18:00"},
	{Name: "Ca 3", Time: "17:00 - 22:00"},
}

// dayNames is indexed by time.Weekday (Sunday = 0).
var dayNames = []string{
	"Chủ nhật",
	"Thứ 2",
	"Thứ 3",
	"Thứ 4",
	"Thứ 5",
	"Thứ 6",
	"Thứ 7",
}

// MondayOf returns the Monday of the week containing t, at midnight in t's location.
// PRE: t is any instant
// POST: Returned date is a Monday, <= t
func MondayOf(t time.Time) time.Time {
	offset := 1 - int(t.Weekday())
	if t.Weekday() == time.Sunday {
		offset = -6
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, offset)
}

// Window generates the rolling set of selectable weeks: WindowBefore weeks
// back, the current week, and WindowAfter weeks ahead.
// PRE: now is any instant
// POST: len == WindowBefore+1+WindowAfter; exactly one week has IsCurrent
func Window(now time.Time) []Week {
	monday := MondayOf(now)
	weeks := make([]Week, 0, WindowBefore+1+WindowAfter)
	for i := -WindowBefore; i <= WindowAfter; i++ {
		start := monday.AddDate(0, 0, i*7)
		end := start.AddDate(0, 0, 6)
		weeks = append(weeks, Week{
			ID:        IDFor(start),
			Label:     fmt.Sprintf("%d/%d - %d/%d/%d", start.Day(), int(start.Month()), end.Day(), int(end.Month()), end.Year()),
			StartDate: start,
			EndDate:   end,
			IsCurrent: i == 0,
		})
	}
	return weeks
}

// IDFor derives the stable week ID from the week's Monday.
func IDFor(monday time.Time) string {
	return fmt.Sprintf("week-%04d-%02d-%02d", monday.Year(), int(monday.Month()), monday.Day())
}

// Find returns the week with the given ID from a window.
// PRE: window was produced by Window
// POST: Returns the week and true, or zero value and false
func Find(window []Week, id string) (Week, bool) {
	for _, w := range window {
		if w.ID == id {
			return w, true
		}
	}
	return Week{}, false
}

// Current returns the window's current week.
// PRE: window was produced by Window
func Current(window []Week) Week {
	for _, w := range window {
		if w.IsCurrent {
			return w
		}
	}
	return Week{}
}

// Days expands a week into its seven day descriptors. Index 0 is always the
// week's Monday regardless of the underlying Sunday-first weekday numbering.
// PRE: w.StartDate is a Monday
// POST: len == DaysPerWeek
func Days(w Week) []Day {
	days := make([]Day, 0, DaysPerWeek)
	for i := 0; i < DaysPerWeek; i++ {
		d := w.StartDate.AddDate(0, 0, i)
		days = append(days, Day{
			Name: dayNames[int(d.Weekday())],
			Date: fmt.Sprintf("%02d/%02d", d.Day(), int(d.Month())),
		})
	}
	return days
}

// SlotKey builds the roster key for a (day, shift) pair.
// PRE: ValidSlot(day, shift)
func SlotKey(day, shift int) string {
	return fmt.Sprintf("day%d-shift%d", day, shift)
}

// ValidSlot reports whether the slot indexes are in range.
func ValidSlot(day, shift int) bool {
	return day >= 0 && day < DaysPerWeek && shift >= 0 && shift < len(Shifts)
}

// AllSlotKeys returns the 21 slot keys of a week in day-major order.
func AllSlotKeys() []string {
	keys := make([]string, 0, DaysPerWeek*len(Shifts))
	for d := 0; d < DaysPerWeek; d++ {
		for s := 0; s < len(Shifts); s++ {
			keys = append(keys, SlotKey(d, s))
		}
	}
	return keys
}
