package roster

import (
	"errors"
	"strings"

	"shiftreg/internal/domain/week"
)

// MaxPeople is the capacity of every slot.
const MaxPeople = 3

// Domain errors
var (
	ErrEmptyName = errors.New("employee name cannot be empty")
)

// WeekRoster maps slot keys (day{D}-shift{S}) to the ordered list of
// registered employee names. Order is registration order.
type WeekRoster map[string][]string

// Outcome reports what a Register or Cancel transform did. Idempotent no-ops
// (already registered, slot full, cancelling an absent name) are successes,
// not errors.
type Outcome string

const (
	OutcomeRegistered        Outcome = "registered"
	OutcomeAlreadyRegistered Outcome = "already-registered"
	OutcomeFull              Outcome = "full"
	OutcomeCancelled         Outcome = "cancelled"
	OutcomeNotRegistered     Outcome = "not-registered"
)

// Register appends name to the slot list unless it is already present or the
// slot is at capacity. First successful commit wins under contention, giving
// first-come-first-served ordering.
// PRE: name is non-empty (callers validate before reaching the store)
// POST: len(result) <= MaxPeople; name appears at most once
func Register(list []string, name string) ([]string, Outcome) {
	if contains(list, name) {
		return list, OutcomeAlreadyRegistered
	}
	if len(list) >= MaxPeople {
		return list, OutcomeFull
	}
	out := make([]string, 0, len(list)+1)
	out = append(out, list...)
	return append(out, name), OutcomeRegistered
}

// Cancel removes every occurrence of name from the slot list. A filter rather
// than a single removal, so accidental duplicates are swept out too.
// POST: name does not appear in the result
func Cancel(list []string, name string) ([]string, Outcome) {
	if !contains(list, name) {
		return list, OutcomeNotRegistered
	}
	out := make([]string, 0, len(list))
	for _, n := range list {
		if n != name {
			out = append(out, n)
		}
	}
	return out, OutcomeCancelled
}

// ValidateName rejects blank employee names before any store call.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

// EmptyWeek returns a roster with all 21 slot keys mapped to empty lists.
func EmptyWeek() WeekRoster {
	wr := make(WeekRoster, len(week.AllSlotKeys()))
	for _, key := range week.AllSlotKeys() {
		wr[key] = []string{}
	}
	return wr
}

// Rename replaces old with new in every slot, preserving position.
// POST: Returns the slot keys that changed
func Rename(wr WeekRoster, oldName, newName string) []string {
	var changed []string
	for key, list := range wr {
		for i, n := range list {
			if n == oldName {
				list[i] = newName
				if len(changed) == 0 || changed[len(changed)-1] != key {
					changed = append(changed, key)
				}
			}
		}
	}
	return changed
}

// Remove filters name out of every slot.
// POST: Returns the slot keys that changed
func Remove(wr WeekRoster, name string) []string {
	var changed []string
	for key, list := range wr {
		next, outcome := Cancel(list, name)
		if outcome == OutcomeCancelled {
			wr[key] = next
			changed = append(changed, key)
		}
	}
	return changed
}

func contains(list []string, name string) bool {
	for _, n := range list {
		if n == name {
			return true
		}
	}
	return false
}
