package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	rosterstore "shiftreg/internal/adapters/storage/roster"
	"shiftreg/internal/adapters/storage/status"
	"shiftreg/internal/domain/roster"
	"shiftreg/internal/domain/week"
)

// RegisterShiftInput carries input for the register and cancel orchestrators.
type RegisterShiftInput struct {
	Name  string
	Day   int
	Shift int
}

// RosterStoreForRegister defines the store interface needed by registration.
type RosterStoreForRegister interface {
	UpdateSlot(ctx context.Context, weekID, slot string, fn rosterstore.SlotTransform) ([]string, error)
}

// StatusStoreForRegister defines the status interface needed by registration.
type StatusStoreForRegister interface {
	Get(ctx context.Context) (status.Status, error)
}

// RegisterShiftDeps holds dependencies for register and cancel.
type RegisterShiftDeps struct {
	RosterStore RosterStoreForRegister
	StatusStore StatusStoreForRegister
}

// RegisterShiftResult reports what a registration mutation did.
type RegisterShiftResult struct {
	WeekID  string
	Slot    string
	Outcome roster.Outcome
	Names   []string
}

var (
	ErrSystemClosed = errors.New("hệ thống đăng ký đang đóng")
	ErrInvalidSlot  = errors.New("invalid day or shift index")
)

// ExecuteRegister adds the employee to a slot of the currently open week.
// A full slot and a repeat registration are quiet successes reported through
// the outcome, never errors.
// PRE: system status must be open
// POST: On OutcomeRegistered the name is in the slot exactly once and the
// slot holds at most MaxPeople names, even under racing registrations
func ExecuteRegister(ctx context.Context, input RegisterShiftInput, deps RegisterShiftDeps) (RegisterShiftResult, error) {
	return mutateSlot(ctx, input, deps, roster.Register, "shift_registered")
}

// ExecuteCancel removes the employee from a slot of the currently open week.
// Cancelling a name that is not present is a quiet success.
func ExecuteCancel(ctx context.Context, input RegisterShiftInput, deps RegisterShiftDeps) (RegisterShiftResult, error) {
	return mutateSlot(ctx, input, deps, roster.Cancel, "shift_cancelled")
}

func mutateSlot(ctx context.Context, input RegisterShiftInput, deps RegisterShiftDeps,
	apply func([]string, string) ([]string, roster.Outcome), event string) (RegisterShiftResult, error) {

	if err := roster.ValidateName(input.Name); err != nil {
		return RegisterShiftResult{}, err
	}
	if !week.ValidSlot(input.Day, input.Shift) {
		return RegisterShiftResult{}, ErrInvalidSlot
	}

	st, err := deps.StatusStore.Get(ctx)
	if err != nil {
		return RegisterShiftResult{}, err
	}
	if !st.IsOpen || st.SelectedWeek == "" {
		return RegisterShiftResult{}, ErrSystemClosed
	}

	slot := week.SlotKey(input.Day, input.Shift)
	var outcome roster.Outcome
	names, err := deps.RosterStore.UpdateSlot(ctx, st.SelectedWeek, slot, func(current []string) ([]string, error) {
		next, o := apply(current, input.Name)
		outcome = o
		return next, nil
	})
	if err != nil {
		return RegisterShiftResult{}, err
	}

	slog.Info("registration_event", "event", event, "week", st.SelectedWeek,
		"slot", slot, "name", input.Name, "outcome", string(outcome))
	return RegisterShiftResult{
		WeekID:  st.SelectedWeek,
		Slot:    slot,
		Outcome: outcome,
		Names:   names,
	}, nil
}
