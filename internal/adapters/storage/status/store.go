// Package status persists the registration system's open/closed switch and
// the week registrations are currently open for.
package status

import "context"

// Status is the system's registration state.
type Status struct {
	IsOpen       bool   `json:"isOpen"`
	SelectedWeek string `json:"selectedWeek"`
}

// Store persists system status.
type Store interface {
	Get(ctx context.Context) (Status, error)
	SetOpen(ctx context.Context, weekID string) error
	SetClosed(ctx context.Context) error
}
