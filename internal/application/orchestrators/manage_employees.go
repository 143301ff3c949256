package orchestrators

import (
	"context"
	"log/slog"

	employeestore "shiftreg/internal/adapters/storage/employee"
	"shiftreg/internal/domain/employee"
	"shiftreg/internal/domain/roster"
	"shiftreg/internal/domain/week"
)

// ManageEmployeesInput carries input for the employee CRUD orchestrators.
// OldName is only used by rename.
type ManageEmployeesInput struct {
	Name    string
	OldName string
}

// EmployeeStoreForManage defines the roster-list interface needed by CRUD.
type EmployeeStoreForManage interface {
	Update(ctx context.Context, fn employeestore.Transform) ([]string, error)
}

// ManageEmployeesDeps holds dependencies for the employee CRUD orchestrators.
// Edits cascade into the currently selected week's shift data so the grid
// never shows a name the roster no longer has.
type ManageEmployeesDeps struct {
	EmployeeStore EmployeeStoreForManage
	RosterStore   RosterStoreForRegister
	StatusStore   StatusStoreForRegister
}

// ExecuteAddEmployee appends a new employee to the roster.
// POST: The roster contains the trimmed name exactly once
func ExecuteAddEmployee(ctx context.Context, input ManageEmployeesInput, deps ManageEmployeesDeps) ([]string, error) {
	names, err := deps.EmployeeStore.Update(ctx, func(current []string) ([]string, error) {
		return employee.Add(current, input.Name)
	})
	if err != nil {
		return nil, err
	}
	slog.Info("roster_event", "event", "employee_added", "name", input.Name)
	return names, nil
}

// ExecuteRenameEmployee renames an employee and rewrites every slot of the
// selected week that holds the old name, preserving slot positions.
func ExecuteRenameEmployee(ctx context.Context, input ManageEmployeesInput, deps ManageEmployeesDeps) ([]string, error) {
	names, err := deps.EmployeeStore.Update(ctx, func(current []string) ([]string, error) {
		return employee.Rename(current, input.OldName, input.Name)
	})
	if err != nil {
		return nil, err
	}
	if err := cascadeSelectedWeek(ctx, deps, func(list []string) []string {
		out := make([]string, len(list))
		for i, n := range list {
			if n == input.OldName {
				out[i] = input.Name
			} else {
				out[i] = n
			}
		}
		return out
	}); err != nil {
		return nil, err
	}
	slog.Info("roster_event", "event", "employee_renamed", "from", input.OldName, "to", input.Name)
	return names, nil
}

// ExecuteDeleteEmployee removes an employee from the roster and filters the
// name out of every slot of the selected week.
func ExecuteDeleteEmployee(ctx context.Context, input ManageEmployeesInput, deps ManageEmployeesDeps) ([]string, error) {
	names, err := deps.EmployeeStore.Update(ctx, func(current []string) ([]string, error) {
		return employee.Remove(current, input.Name)
	})
	if err != nil {
		return nil, err
	}
	if err := cascadeSelectedWeek(ctx, deps, func(list []string) []string {
		next, _ := roster.Cancel(list, input.Name)
		return next
	}); err != nil {
		return nil, err
	}
	slog.Info("roster_event", "event", "employee_deleted", "name", input.Name)
	return names, nil
}

// cascadeSelectedWeek applies rewrite to every slot of the selected week.
// Slots the rewrite leaves unchanged commit nothing. No selected week means
// nothing to cascade into.
func cascadeSelectedWeek(ctx context.Context, deps ManageEmployeesDeps, rewrite func([]string) []string) error {
	st, err := deps.StatusStore.Get(ctx)
	if err != nil {
		return err
	}
	if st.SelectedWeek == "" {
		return nil
	}
	for _, slot := range week.AllSlotKeys() {
		_, err := deps.RosterStore.UpdateSlot(ctx, st.SelectedWeek, slot, func(current []string) ([]string, error) {
			return rewrite(current), nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
