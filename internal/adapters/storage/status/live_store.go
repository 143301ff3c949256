package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"shiftreg/internal/adapters/storage/livestore"
)

const (
	isOpenPath       = "systemStatus/isOpen"
	selectedWeekPath = "systemStatus/selectedWeek"
)

// LiveStore implements Store on the live document store. The two fields live
// in separate documents so watchers of either converge independently.
type LiveStore struct {
	docs livestore.Store
}

// NewLiveStore creates a status store backed by the given document store.
func NewLiveStore(docs livestore.Store) *LiveStore {
	return &LiveStore{docs: docs}
}

// Get reads the current status.
// POST: Missing documents read as closed with no selected week.
func (s *LiveStore) Get(ctx context.Context) (Status, error) {
	var st Status

	raw, err := s.docs.Get(ctx, isOpenPath)
	switch {
	case errors.Is(err, livestore.ErrNotFound):
	case err != nil:
		return Status{}, err
	default:
		if err := json.Unmarshal(raw, &st.IsOpen); err != nil {
			return Status{}, fmt.Errorf("decode %s: %w", isOpenPath, err)
		}
	}

	raw, err = s.docs.Get(ctx, selectedWeekPath)
	switch {
	case errors.Is(err, livestore.ErrNotFound):
	case err != nil:
		return Status{}, err
	default:
		if err := json.Unmarshal(raw, &st.SelectedWeek); err != nil {
			return Status{}, fmt.Errorf("decode %s: %w", selectedWeekPath, err)
		}
	}

	return st, nil
}

// SetOpen opens registrations for the given week.
// PRE: weekID has been validated against the visible window
// POST: isOpen is true and selectedWeek is weekID
func (s *LiveStore) SetOpen(ctx context.Context, weekID string) error {
	week, err := json.Marshal(weekID)
	if err != nil {
		return err
	}
	if err := s.docs.Set(ctx, selectedWeekPath, week); err != nil {
		return err
	}
	return s.docs.Set(ctx, isOpenPath, json.RawMessage("true"))
}

// SetClosed closes registrations. The selected week is kept so reopening
// defaults to the same week.
func (s *LiveStore) SetClosed(ctx context.Context) error {
	return s.docs.Set(ctx, isOpenPath, json.RawMessage("false"))
}
