package orchestrators

import (
	"context"
	"errors"
	"testing"

	"shiftreg/internal/domain/roles"
)

func TestExecuteAssignRole_KetPerShift(t *testing.T) {
	rls := newMockRolesStore()
	deps := AssignRoleDeps{RolesStore: rls}

	dr, err := ExecuteAssignRole(context.Background(), AssignRoleInput{
		WeekID: "w", Day: 1, Shift: 2, Name: "Anh", Role: roles.RoleKet,
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dr.KetKeepers.Shift2 != "Anh" {
		t.Errorf("day roles = %+v", dr)
	}
	if dr.KetKeepers.Shift0 != "" || dr.KetKeepers.Shift1 != "" {
		t.Errorf("other shifts touched: %+v", dr)
	}
}

func TestExecuteAssignRole_KeyOnlyShiftZero(t *testing.T) {
	rls := newMockRolesStore()
	deps := AssignRoleDeps{RolesStore: rls}

	if _, err := ExecuteAssignRole(context.Background(), AssignRoleInput{
		WeekID: "w", Day: 0, Shift: 1, Name: "Anh", Role: roles.RoleKey,
	}, deps); !errors.Is(err, roles.ErrKeyRoleShift) {
		t.Errorf("err = %v, want ErrKeyRoleShift", err)
	}
	if len(rls.weeks) != 0 && rls.weeks["w"][0].KeyKeeper != "" {
		t.Errorf("rejected assignment persisted: %+v", rls.weeks)
	}

	dr, err := ExecuteAssignRole(context.Background(), AssignRoleInput{
		WeekID: "w", Day: 0, Shift: 0, Name: "Anh", Role: roles.RoleKey,
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dr.KeyKeeper != "Anh" {
		t.Errorf("day roles = %+v", dr)
	}
}

func TestExecuteAssignRole_LastWriterWins(t *testing.T) {
	rls := newMockRolesStore()
	deps := AssignRoleDeps{RolesStore: rls}
	in := AssignRoleInput{WeekID: "w", Day: 0, Shift: 0, Name: "Anh", Role: roles.RoleKey}
	ExecuteAssignRole(context.Background(), in, deps)

	in.Name = "Binh"
	dr, err := ExecuteAssignRole(context.Background(), in, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dr.KeyKeeper != "Binh" {
		t.Errorf("key keeper = %q", dr.KeyKeeper)
	}
}

func TestExecuteAssignRole_BadInput(t *testing.T) {
	deps := AssignRoleDeps{RolesStore: newMockRolesStore()}
	if _, err := ExecuteAssignRole(context.Background(), AssignRoleInput{
		WeekID: "w", Day: 0, Shift: 0, Name: "Anh", Role: "janitor",
	}, deps); !errors.Is(err, roles.ErrUnknownRole) {
		t.Errorf("err = %v, want ErrUnknownRole", err)
	}
	if _, err := ExecuteAssignRole(context.Background(), AssignRoleInput{
		WeekID: "w", Day: 9, Shift: 0, Name: "Anh", Role: roles.RoleKet,
	}, deps); !errors.Is(err, roles.ErrInvalidSlot) {
		t.Errorf("err = %v, want ErrInvalidSlot", err)
	}
	if _, err := ExecuteAssignRole(context.Background(), AssignRoleInput{
		WeekID: "w", Day: 0, Shift: 0, Name: "", Role: roles.RoleKet,
	}, deps); !errors.Is(err, roles.ErrEmptyName) {
		t.Errorf("err = %v, want ErrEmptyName", err)
	}
}
