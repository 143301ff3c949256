package roles

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"shiftreg/internal/adapters/storage/livestore"
	domain "shiftreg/internal/domain/roles"
)

// LiveStore implements Store on the live document store. Each day is its own
// document so assignments on different days never contend.
type LiveStore struct {
	docs livestore.Store
}

// NewLiveStore creates a roles store backed by the given document store.
func NewLiveStore(docs livestore.Store) *LiveStore {
	return &LiveStore{docs: docs}
}

func weekPrefix(weekID string) string {
	return "dailyRoles/" + weekID + "/"
}

func dayPath(weekID string, day int) string {
	return weekPrefix(weekID) + domain.DayKey(day)
}

// GetWeek collects every written day of a week into a WeekRoles map. Days
// stored in a retired keeper format are discarded by resetting the whole
// week, so readers only ever see the current shape.
// POST: Days never written are absent from the map.
func (s *LiveStore) GetWeek(ctx context.Context, weekID string) (domain.WeekRoles, error) {
	docs, err := s.docs.GetPrefix(ctx, weekPrefix(weekID))
	if err != nil {
		return nil, fmt.Errorf("load roles for week %s: %w", weekID, err)
	}

	wr := make(domain.WeekRoles, len(docs))
	for path, raw := range docs {
		if isLegacyShape(raw) {
			if err := s.ResetWeek(ctx, weekID); err != nil {
				return nil, fmt.Errorf("clear legacy roles for week %s: %w", weekID, err)
			}
			return domain.WeekRoles{}, nil
		}
		day := strings.TrimPrefix(path, weekPrefix(weekID))
		var dr domain.DayRoles
		if err := json.Unmarshal(raw, &dr); err != nil {
			return nil, fmt.Errorf("decode roles %s of week %s: %w", day, weekID, err)
		}
		wr[day] = dr
	}
	return wr, nil
}

// UpdateDay applies fn atomically to one day's assignments under optimistic
// concurrency.
// POST: Returns the assignments that are now persisted.
func (s *LiveStore) UpdateDay(ctx context.Context, weekID string, day int, fn DayTransform) (domain.DayRoles, error) {
	raw, err := s.docs.Update(ctx, dayPath(weekID, day), func(current json.RawMessage) (json.RawMessage, error) {
		var dr domain.DayRoles
		if current != nil && !isLegacyShape(current) {
			if err := json.Unmarshal(current, &dr); err != nil {
				return nil, fmt.Errorf("decode roles day%d of week %s: %w", day, weekID, err)
			}
		}
		next, err := fn(dr)
		if err != nil {
			return nil, err
		}
		return json.Marshal(next)
	})
	if err != nil {
		return domain.DayRoles{}, err
	}

	var dr domain.DayRoles
	if raw != nil {
		if err := json.Unmarshal(raw, &dr); err != nil {
			return domain.DayRoles{}, fmt.Errorf("decode roles day%d of week %s: %w", day, weekID, err)
		}
	}
	return dr, nil
}

// ResetWeek deletes every day document of a week.
// POST: GetWeek on the same week returns an empty map.
func (s *LiveStore) ResetWeek(ctx context.Context, weekID string) error {
	docs, err := s.docs.GetPrefix(ctx, weekPrefix(weekID))
	if err != nil {
		return fmt.Errorf("load roles for week %s: %w", weekID, err)
	}
	for path := range docs {
		if err := s.docs.Delete(ctx, path); err != nil {
			return fmt.Errorf("reset roles for week %s: %w", weekID, err)
		}
	}
	return nil
}

// isLegacyShape reports whether raw is a retired keeper format: a flat JSON
// array, or a day object whose keeper fields hold arrays where the current
// shape stores a string (keyKeeper) and a per-shift object (ketKeepers).
func isLegacyShape(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return false
	}
	if trimmed[0] == '[' {
		return true
	}
	if trimmed[0] != '{' {
		return false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return false
	}
	for _, key := range [...]string{"keyKeeper", "keyKeepers", "ketKeepers"} {
		v := bytes.TrimLeft(fields[key], " \t\r\n")
		if len(v) > 0 && v[0] == '[' {
			return true
		}
	}
	return false
}
