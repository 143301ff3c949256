package orchestrators

import (
	"context"
	"log/slog"

	rolesstore "shiftreg/internal/adapters/storage/roles"
	"shiftreg/internal/domain/roles"
	"shiftreg/internal/domain/week"
)

// AssignRoleInput carries input for the assign-role orchestrator.
type AssignRoleInput struct {
	WeekID string
	Day    int
	Shift  int
	Name   string
	Role   string
}

// RolesStoreForAssign defines the store interface needed by AssignRole.
type RolesStoreForAssign interface {
	UpdateDay(ctx context.Context, weekID string, day int, fn rolesstore.DayTransform) (roles.DayRoles, error)
}

// AssignRoleDeps holds dependencies for AssignRole.
type AssignRoleDeps struct {
	RolesStore RolesStoreForAssign
}

// ExecuteAssignRole drops a role token onto a shift cell. Assignment is
// last-writer-wins: a new holder silently replaces the previous one.
// PRE: role "key" only pairs with shift 0
// POST: The day record holds name in exactly the addressed role field
func ExecuteAssignRole(ctx context.Context, input AssignRoleInput, deps AssignRoleDeps) (roles.DayRoles, error) {
	if input.Day < 0 || input.Day >= week.DaysPerWeek {
		return roles.DayRoles{}, roles.ErrInvalidSlot
	}
	dr, err := deps.RolesStore.UpdateDay(ctx, input.WeekID, input.Day, func(current roles.DayRoles) (roles.DayRoles, error) {
		if err := current.Assign(input.Name, input.Role, input.Shift); err != nil {
			return roles.DayRoles{}, err
		}
		return current, nil
	})
	if err != nil {
		return roles.DayRoles{}, err
	}
	slog.Info("roles_event", "event", "role_assigned", "week", input.WeekID,
		"day", input.Day, "shift", input.Shift, "role", input.Role, "name", input.Name)
	return dr, nil
}
