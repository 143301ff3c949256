package roles

import (
	"context"

	domain "shiftreg/internal/domain/roles"
)

// DayTransform rewrites one day's role assignments. It receives the current
// assignments (zero value if the day has never been written) and returns the
// assignments to persist.
type DayTransform func(current domain.DayRoles) (domain.DayRoles, error)

// Store persists daily role assignments, one document per day.
type Store interface {
	GetWeek(ctx context.Context, weekID string) (domain.WeekRoles, error)
	UpdateDay(ctx context.Context, weekID string, day int, fn DayTransform) (domain.DayRoles, error)
	ResetWeek(ctx context.Context, weekID string) error
}
