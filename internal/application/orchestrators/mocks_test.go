package orchestrators

import (
	"context"

	employeestore "shiftreg/internal/adapters/storage/employee"
	rolesstore "shiftreg/internal/adapters/storage/roles"
	rosterstore "shiftreg/internal/adapters/storage/roster"
	"shiftreg/internal/adapters/storage/status"
	"shiftreg/internal/domain/roles"
)

// mockRosterStore implements the roster store interfaces for testing.
type mockRosterStore struct {
	weeks map[string]map[string][]string
}

func newMockRosterStore() *mockRosterStore {
	return &mockRosterStore{weeks: make(map[string]map[string][]string)}
}

func (m *mockRosterStore) UpdateSlot(_ context.Context, weekID, slot string, fn rosterstore.SlotTransform) ([]string, error) {
	wk := m.weeks[weekID]
	if wk == nil {
		wk = make(map[string][]string)
		m.weeks[weekID] = wk
	}
	next, err := fn(wk[slot])
	if err != nil {
		return nil, err
	}
	wk[slot] = next
	return next, nil
}

func (m *mockRosterStore) ResetWeek(_ context.Context, weekID string) error {
	delete(m.weeks, weekID)
	return nil
}

// mockStatusStore implements the status store interfaces for testing.
type mockStatusStore struct {
	st status.Status
}

func (m *mockStatusStore) Get(_ context.Context) (status.Status, error) {
	return m.st, nil
}

func (m *mockStatusStore) SetOpen(_ context.Context, weekID string) error {
	m.st = status.Status{IsOpen: true, SelectedWeek: weekID}
	return nil
}

func (m *mockStatusStore) SetClosed(_ context.Context) error {
	m.st.IsOpen = false
	return nil
}

// mockCredentialStore implements the credential store interfaces for testing.
type mockCredentialStore struct {
	digest string
}

func (m *mockCredentialStore) GetDigest(_ context.Context) (string, error) {
	return m.digest, nil
}

func (m *mockCredentialStore) SetDigest(_ context.Context, digest string) error {
	m.digest = digest
	return nil
}

func (m *mockCredentialStore) SeedDigest(_ context.Context, digest string) error {
	if m.digest == "" {
		m.digest = digest
	}
	return nil
}

// mockEmployeeStore implements EmployeeStoreForManage for testing.
type mockEmployeeStore struct {
	names []string
}

func (m *mockEmployeeStore) Update(_ context.Context, fn employeestore.Transform) ([]string, error) {
	next, err := fn(m.names)
	if err != nil {
		return nil, err
	}
	m.names = next
	return next, nil
}

// mockRolesStore implements the roles store interfaces for testing.
type mockRolesStore struct {
	weeks map[string]map[int]roles.DayRoles
}

func newMockRolesStore() *mockRolesStore {
	return &mockRolesStore{weeks: make(map[string]map[int]roles.DayRoles)}
}

func (m *mockRolesStore) UpdateDay(_ context.Context, weekID string, day int, fn rolesstore.DayTransform) (roles.DayRoles, error) {
	wk := m.weeks[weekID]
	if wk == nil {
		wk = make(map[int]roles.DayRoles)
		m.weeks[weekID] = wk
	}
	next, err := fn(wk[day])
	if err != nil {
		return roles.DayRoles{}, err
	}
	wk[day] = next
	return next, nil
}

func (m *mockRolesStore) ResetWeek(_ context.Context, weekID string) error {
	delete(m.weeks, weekID)
	return nil
}
