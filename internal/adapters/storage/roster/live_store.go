package roster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"shiftreg/internal/adapters/storage/livestore"
	domain "shiftreg/internal/domain/roster"
)

// LiveStore implements Store on top of the live document store. Each slot is
// its own document so concurrent registrations on different slots never
// contend, and registrations on the same slot serialize through Update.
type LiveStore struct {
	docs livestore.Store
}

// NewLiveStore creates a roster store backed by the given document store.
func NewLiveStore(docs livestore.Store) *LiveStore {
	return &LiveStore{docs: docs}
}

func weekPrefix(weekID string) string {
	return "shifts/" + weekID + "/"
}

func slotPath(weekID, slot string) string {
	return weekPrefix(weekID) + slot
}

// GetWeek collects every written slot of a week into a WeekRoster.
// POST: Slots never written are absent from the map; callers treat absence as
// an empty list.
func (s *LiveStore) GetWeek(ctx context.Context, weekID string) (domain.WeekRoster, error) {
	docs, err := s.docs.GetPrefix(ctx, weekPrefix(weekID))
	if err != nil {
		return nil, fmt.Errorf("load week %s: %w", weekID, err)
	}

	wr := make(domain.WeekRoster, len(docs))
	for path, raw := range docs {
		slot := strings.TrimPrefix(path, weekPrefix(weekID))
		var names []string
		if err := json.Unmarshal(raw, &names); err != nil {
			return nil, fmt.Errorf("decode slot %s of week %s: %w", slot, weekID, err)
		}
		wr[slot] = names
	}
	return wr, nil
}

// GetSlot returns the current name list for a single slot.
// POST: A slot never written reads as an empty list, not an error.
func (s *LiveStore) GetSlot(ctx context.Context, weekID, slot string) ([]string, error) {
	raw, err := s.docs.Get(ctx, slotPath(weekID, slot))
	if errors.Is(err, livestore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return nil, fmt.Errorf("decode slot %s of week %s: %w", slot, weekID, err)
	}
	return names, nil
}

// UpdateSlot applies fn atomically to one slot's name list under optimistic
// concurrency. Racing writers are retried against the fresh list, so no
// accepted name is ever lost.
// POST: Returns the list that is now persisted.
func (s *LiveStore) UpdateSlot(ctx context.Context, weekID, slot string, fn SlotTransform) ([]string, error) {
	raw, err := s.docs.Update(ctx, slotPath(weekID, slot), func(current json.RawMessage) (json.RawMessage, error) {
		var names []string
		if current != nil {
			if err := json.Unmarshal(current, &names); err != nil {
				return nil, fmt.Errorf("decode slot %s of week %s: %w", slot, weekID, err)
			}
		}
		next, err := fn(names)
		if err != nil {
			return nil, err
		}
		if sameNames(names, next) {
			return current, nil
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
			return nil, fmt.Errorf("decode slot %s of week %s: %w", slot, weekID, err)
		}
	}
	return names, nil
}

// ResetWeek deletes every slot document of a week.
// POST: GetWeek on the same week returns an empty roster.
func (s *LiveStore) ResetWeek(ctx context.Context, weekID string) error {
	docs, err := s.docs.GetPrefix(ctx, weekPrefix(weekID))
	if err != nil {
		return fmt.Errorf("load week %s: %w", weekID, err)
	}
	for path := range docs {
		if err := s.docs.Delete(ctx, path); err != nil {
			return fmt.Errorf("reset week %s: %w", weekID, err)
		}
	}
	return nil
}

func sameNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
