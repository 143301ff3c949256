package roster

import (
	"context"

	domain "shiftreg/internal/domain/roster"
)

// SlotTransform rewrites the name list of a single slot. It receives the
// current list (nil if the slot has never been written) and returns the list
// to persist. Returning an equal list commits nothing.
type SlotTransform func(current []string) ([]string, error)

// Store persists week rosters, one document per slot.
type Store interface {
	GetWeek(ctx context.Context, weekID string) (domain.WeekRoster, error)
	GetSlot(ctx context.Context, weekID, slot string) ([]string, error)
	UpdateSlot(ctx context.Context, weekID, slot string, fn SlotTransform) ([]string, error)
	ResetWeek(ctx context.Context, weekID string) error
}
