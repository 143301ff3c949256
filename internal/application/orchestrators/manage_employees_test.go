package orchestrators

import (
	"context"
	"errors"
	"testing"

	"shiftreg/internal/adapters/storage/status"
	"shiftreg/internal/domain/employee"
)

func manageDeps(names ...string) (ManageEmployeesDeps, *mockEmployeeStore, *mockRosterStore) {
	es := &mockEmployeeStore{names: names}
	rs := newMockRosterStore()
	deps := ManageEmployeesDeps{
		EmployeeStore: es,
		RosterStore:   rs,
		StatusStore:   &mockStatusStore{st: status.Status{IsOpen: true, SelectedWeek: "w"}},
	}
	return deps, es, rs
}

func TestExecuteAddEmployee(t *testing.T) {
	deps, es, _ := manageDeps("Anh")
	names, err := ExecuteAddEmployee(context.Background(), ManageEmployeesInput{Name: "  Binh  "}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 2 || names[1] != "Binh" {
		t.Errorf("roster = %v", names)
	}
	if len(es.names) != 2 {
		t.Errorf("not persisted: %v", es.names)
	}

	if _, err := ExecuteAddEmployee(context.Background(), ManageEmployeesInput{Name: "Anh"}, deps); !errors.Is(err, employee.ErrDuplicateName) {
		t.Errorf("duplicate err = %v", err)
	}
	if _, err := ExecuteAddEmployee(context.Background(), ManageEmployeesInput{Name: " "}, deps); !errors.Is(err, employee.ErrEmptyName) {
		t.Errorf("empty err = %v", err)
	}
}

// TestExecuteRenameEmployee_Cascades verifies the rename rewrites the selected
// week's slots while keeping each name's position.
func TestExecuteRenameEmployee_Cascades(t *testing.T) {
	deps, _, rs := manageDeps("Anh", "Binh")
	rs.weeks["w"] = map[string][]string{
		"day0-shift0": {"Binh", "Anh", "Chi"},
		"day3-shift2": {"Anh"},
		"day5-shift1": {"Chi"},
	}

	names, err := ExecuteRenameEmployee(context.Background(), ManageEmployeesInput{OldName: "Anh", Name: "An"}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if names[0] != "An" || names[1] != "Binh" {
		t.Errorf("roster = %v", names)
	}

	got := rs.weeks["w"]["day0-shift0"]
	if got[0] != "Binh" || got[1] != "An" || got[2] != "Chi" {
		t.Errorf("slot order broken: %v", got)
	}
	if got := rs.weeks["w"]["day3-shift2"]; got[0] != "An" {
		t.Errorf("slot not cascaded: %v", got)
	}
	if got := rs.weeks["w"]["day5-shift1"]; got[0] != "Chi" {
		t.Errorf("unrelated slot touched: %v", got)
	}
}

func TestExecuteRenameEmployee_Conflict(t *testing.T) {
	deps, _, _ := manageDeps("Anh", "Binh")
	_, err := ExecuteRenameEmployee(context.Background(), ManageEmployeesInput{OldName: "Anh", Name: "Binh"}, deps)
	if !errors.Is(err, employee.ErrDuplicateName) {
		t.Errorf("err = %v, want ErrDuplicateName", err)
	}
}

func TestExecuteDeleteEmployee_Cascades(t *testing.T) {
	deps, _, rs := manageDeps("Anh", "Binh")
	rs.weeks["w"] = map[string][]string{
		"day0-shift0": {"Anh", "Binh"},
		"day2-shift1": {"Anh"},
	}

	names, err := ExecuteDeleteEmployee(context.Background(), ManageEmployeesInput{Name: "Anh"}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 1 || names[0] != "Binh" {
		t.Errorf("roster = %v", names)
	}
	if got := rs.weeks["w"]["day0-shift0"]; len(got) != 1 || got[0] != "Binh" {
		t.Errorf("slot = %v", got)
	}
	if got := rs.weeks["w"]["day2-shift1"]; len(got) != 0 {
		t.Errorf("slot = %v", got)
	}
}

func TestExecuteDeleteEmployee_Unknown(t *testing.T) {
	deps, _, _ := manageDeps("Anh")
	_, err := ExecuteDeleteEmployee(context.Background(), ManageEmployeesInput{Name: "Ghost"}, deps)
	if !errors.Is(err, employee.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
