package orchestrators

import (
	"context"
	"errors"
	"testing"

	"shiftreg/internal/adapters/storage/status"
	"shiftreg/internal/domain/roster"
)

func openDeps(weekID string) (RegisterShiftDeps, *mockRosterStore) {
	rs := newMockRosterStore()
	return RegisterShiftDeps{
		RosterStore: rs,
		StatusStore: &mockStatusStore{st: status.Status{IsOpen: true, SelectedWeek: weekID}},
	}, rs
}

func TestExecuteRegister_Valid(t *testing.T) {
	deps, rs := openDeps("week-2024-06-03")
	res, err := ExecuteRegister(context.Background(), RegisterShiftInput{Name: "Anh", Day: 2, Shift: 1}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != roster.OutcomeRegistered {
		t.Errorf("outcome = %s", res.Outcome)
	}
	if res.WeekID != "week-2024-06-03" || res.Slot != "day2-shift1" {
		t.Errorf("addressed %s/%s", res.WeekID, res.Slot)
	}
	got := rs.weeks["week-2024-06-03"]["day2-shift1"]
	if len(got) != 1 || got[0] != "Anh" {
		t.Errorf("persisted %v", got)
	}
}

func TestExecuteRegister_Repeat(t *testing.T) {
	deps, rs := openDeps("w")
	input := RegisterShiftInput{Name: "Anh"}
	ExecuteRegister(context.Background(), input, deps)
	res, err := ExecuteRegister(context.Background(), input, deps)
	if err != nil {
		t.Fatalf("repeat registration errored: %v", err)
	}
	if res.Outcome != roster.OutcomeAlreadyRegistered {
		t.Errorf("outcome = %s", res.Outcome)
	}
	if got := rs.weeks["w"]["day0-shift0"]; len(got) != 1 {
		t.Errorf("duplicate persisted: %v", got)
	}
}

func TestExecuteRegister_FullSlot(t *testing.T) {
	deps, _ := openDeps("w")
	for _, n := range []string{"Anh", "Binh", "Chi"} {
		ExecuteRegister(context.Background(), RegisterShiftInput{Name: n}, deps)
	}
	res, err := ExecuteRegister(context.Background(), RegisterShiftInput{Name: "Dao"}, deps)
	if err != nil {
		t.Fatalf("full slot errored: %v", err)
	}
	if res.Outcome != roster.OutcomeFull {
		t.Errorf("outcome = %s", res.Outcome)
	}
	if len(res.Names) != roster.MaxPeople {
		t.Errorf("names = %v", res.Names)
	}
}

func TestExecuteRegister_Closed(t *testing.T) {
	deps := RegisterShiftDeps{
		RosterStore: newMockRosterStore(),
		StatusStore: &mockStatusStore{st: status.Status{IsOpen: false, SelectedWeek: "w"}},
	}
	_, err := ExecuteRegister(context.Background(), RegisterShiftInput{Name: "Anh"}, deps)
	if !errors.Is(err, ErrSystemClosed) {
		t.Errorf("err = %v, want ErrSystemClosed", err)
	}
}

func TestExecuteRegister_EmptyName(t *testing.T) {
	deps, _ := openDeps("w")
	_, err := ExecuteRegister(context.Background(), RegisterShiftInput{Name: "   "}, deps)
	if !errors.Is(err, roster.ErrEmptyName) {
		t.Errorf("err = %v, want ErrEmptyName", err)
	}
}

func TestExecuteRegister_BadSlot(t *testing.T) {
	deps, _ := openDeps("w")
	for _, in := range []RegisterShiftInput{
		{Name: "Anh", Day: 7, Shift: 0},
		{Name: "Anh", Day: -1, Shift: 0},
		{Name: "Anh", Day: 0, Shift: 3},
	} {
		if _, err := ExecuteRegister(context.Background(), in, deps); !errors.Is(err, ErrInvalidSlot) {
			t.Errorf("day=%d shift=%d: err = %v, want ErrInvalidSlot", in.Day, in.Shift, err)
		}
	}
}

func TestExecuteCancel_RoundTrip(t *testing.T) {
	deps, rs := openDeps("w")
	input := RegisterShiftInput{Name: "Anh", Day: 4, Shift: 2}
	ExecuteRegister(context.Background(), input, deps)

	res, err := ExecuteCancel(context.Background(), input, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != roster.OutcomeCancelled {
		t.Errorf("outcome = %s", res.Outcome)
	}
	if got := rs.weeks["w"]["day4-shift2"]; len(got) != 0 {
		t.Errorf("slot after cancel: %v", got)
	}

	res, err = ExecuteCancel(context.Background(), input, deps)
	if err != nil {
		t.Fatalf("repeat cancel errored: %v", err)
	}
	if res.Outcome != roster.OutcomeNotRegistered {
		t.Errorf("repeat outcome = %s", res.Outcome)
	}
}
