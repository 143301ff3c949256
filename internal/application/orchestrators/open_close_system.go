package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"shiftreg/internal/domain/week"
)

// OpenSystemInput carries input for the open-system orchestrator.
type OpenSystemInput struct {
	Password string
	WeekID   string
	Now      time.Time
}

// StatusStoreForOpenClose defines the status interface needed by open/close.
type StatusStoreForOpenClose interface {
	SetOpen(ctx context.Context, weekID string) error
	SetClosed(ctx context.Context) error
}

// OpenCloseSystemDeps holds dependencies for open and close.
type OpenCloseSystemDeps struct {
	StatusStore     StatusStoreForOpenClose
	CredentialStore CredentialStoreForVerify
}

var ErrUnknownWeek = errors.New("tuần không hợp lệ")

// ExecuteOpenSystem opens registrations for one week of the visible window.
// PRE: Password matches the stored digest
// POST: isOpen is true and selectedWeek is input.WeekID, committed together
func ExecuteOpenSystem(ctx context.Context, input OpenSystemInput, deps OpenCloseSystemDeps) error {
	if err := ExecuteVerifyAdmin(ctx, input.Password, VerifyAdminDeps{CredentialStore: deps.CredentialStore}); err != nil {
		return err
	}
	if _, ok := week.Find(week.Window(input.Now), input.WeekID); !ok {
		return ErrUnknownWeek
	}
	if err := deps.StatusStore.SetOpen(ctx, input.WeekID); err != nil {
		return err
	}
	slog.Info("admin_event", "event", "system_opened", "week", input.WeekID)
	return nil
}

// ExecuteCloseSystem closes registrations. The selected week is kept.
// PRE: Password matches the stored digest
func ExecuteCloseSystem(ctx context.Context, password string, deps OpenCloseSystemDeps) error {
	if err := ExecuteVerifyAdmin(ctx, password, VerifyAdminDeps{CredentialStore: deps.CredentialStore}); err != nil {
		return err
	}
	if err := deps.StatusStore.SetClosed(ctx); err != nil {
		return err
	}
	slog.Info("admin_event", "event", "system_closed")
	return nil
}
