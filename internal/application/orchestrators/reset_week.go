package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"shiftreg/internal/domain/week"
)

// ResetWeekInput carries input for the reset-week orchestrator.
type ResetWeekInput struct {
	Password string
	WeekID   string
	Now      time.Time
}

// RosterStoreForReset defines the roster interface needed by reset.
type RosterStoreForReset interface {
	ResetWeek(ctx context.Context, weekID string) error
}

// RolesStoreForReset defines the roles interface needed by reset.
type RolesStoreForReset interface {
	ResetWeek(ctx context.Context, weekID string) error
}

// ResetWeekDeps holds dependencies for ResetWeek.
type ResetWeekDeps struct {
	RosterStore     RosterStoreForReset
	RolesStore      RolesStoreForReset
	CredentialStore CredentialStoreForVerify
}

// ExecuteResetWeek wipes one week's registrations and role assignments. The
// week must be in the visible window: the stores match on a path prefix, so
// an arbitrary ID must never reach them.
// PRE: Password matches the stored digest
// POST: The week reads as 21 empty slots; other weeks are untouched
func ExecuteResetWeek(ctx context.Context, input ResetWeekInput, deps ResetWeekDeps) error {
	if err := ExecuteVerifyAdmin(ctx, input.Password, VerifyAdminDeps{CredentialStore: deps.CredentialStore}); err != nil {
		return err
	}
	if _, ok := week.Find(week.Window(input.Now), input.WeekID); !ok {
		return ErrUnknownWeek
	}
	if err := deps.RosterStore.ResetWeek(ctx, input.WeekID); err != nil {
		return err
	}
	if err := deps.RolesStore.ResetWeek(ctx, input.WeekID); err != nil {
		return err
	}
	slog.Info("admin_event", "event", "week_reset", "week", input.WeekID)
	return nil
}
