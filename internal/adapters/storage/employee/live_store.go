package employee

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"shiftreg/internal/adapters/storage/livestore"
)

const rosterPath = "employees"

// LiveStore implements Store on the live document store, keeping the whole
// roster in one document so renames and removals commit atomically.
type LiveStore struct {
	docs livestore.Store
}

// NewLiveStore creates an employee store backed by the given document store.
func NewLiveStore(docs livestore.Store) *LiveStore {
	return &LiveStore{docs: docs}
}

// List returns the roster in stored order.
// POST: An unseeded roster reads as an empty list, not an error.
func (s *LiveStore) List(ctx context.Context) ([]string, error) {
	raw, err := s.docs.Get(ctx, rosterPath)
	if errors.Is(err, livestore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return nil, fmt.Errorf("decode employee roster: %w", err)
	}
	return names, nil
}

// Save overwrites the roster unconditionally.
func (s *LiveStore) Save(ctx context.Context, names []string) error {
	if names == nil {
		names = []string{}
	}
	raw, err := json.Marshal(names)
	if err != nil {
		return err
	}
	return s.docs.Set(ctx, rosterPath, raw)
}

// Update applies fn atomically to the roster under optimistic concurrency.
// POST: Returns the list that is now persisted.
func (s *LiveStore) Update(ctx context.Context, fn Transform) ([]string, error) {
	raw, err := s.docs.Update(ctx, rosterPath, func(current json.RawMessage) (json.RawMessage, error) {
		var names []string
		if current != nil {
			if err := json.Unmarshal(current, &names); err != nil {
				return nil, fmt.Errorf("decode employee roster: %w", err)
			}
		}
		next, err := fn(names)
		if err != nil {
			return nil, err
		}
		if next == nil {
			next = []string{}
		}
		return json.Marshal(next)
	})
	if err != nil {
		return nil, err
	}
	var names []string
	if raw != nil {
		if err := json.Unmarshal(raw, &names); err != nil {
			return nil, fmt.Errorf("decode employee roster: %w", err)
		}
	}
	return names, nil
}
