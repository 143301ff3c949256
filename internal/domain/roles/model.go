package roles

import (
	"errors"
	"fmt"

	"shiftreg/internal/domain/week"
)

// Role token kinds, matching the draggable tokens in the schedule overlay.
const (
	RoleKey = "key" // key holder, one per day, shift 0 only
	RoleKet = "ket" // safe holder, one per shift
)

// Domain errors
var (
	ErrKeyRoleShift = errors.New("vai trò 'Key' chỉ được gán cho Ca 1")
	ErrUnknownRole  = errors.New("unknown role type")
	ErrInvalidSlot  = errors.New("invalid day or shift index")
	ErrEmptyName    = errors.New("employee name cannot be empty")
)

// KetKeepers holds the per-shift safe holder, one independent slot per shift.
type KetKeepers struct {
	Shift0 string `json:"shift0"`
	Shift1 string `json:"shift1"`
	Shift2 string `json:"shift2"`
}

// DayRoles is the canonical per-day role record. Empty strings mean
// unassigned. Legacy array-shaped records are normalized away at the store
// boundary; this type only ever carries canonical data.
type DayRoles struct {
	KeyKeeper  string     `json:"keyKeeper"`
	KetKeepers KetKeepers `json:"ketKeepers"`
}

// WeekRoles maps day keys (day{D}) to their role records.
type WeekRoles map[string]DayRoles

// DayKey builds the role map key for a day index.
func DayKey(day int) string {
	return fmt.Sprintf("day%d", day)
}

// Assign sets a role holder on the record, overwriting any prior holder.
// PRE: name is non-empty, day/shift in range
// POST: On success exactly one holder field changed
func (d *DayRoles) Assign(name, role string, shift int) error {
	if name == "" {
		return ErrEmptyName
	}
	if shift < 0 || shift >= len(week.Shifts) {
		return ErrInvalidSlot
	}
	switch role {
	case RoleKey:
		if shift != 0 {
			return ErrKeyRoleShift
		}
		d.KeyKeeper = name
	case RoleKet:
		switch shift {
		case 0:
			d.KetKeepers.Shift0 = name
		case 1:
			d.KetKeepers.Shift1 = name
		case 2:
			d.KetKeepers.Shift2 = name
		}
	default:
		return ErrUnknownRole
	}
	return nil
}

// KetFor returns the safe holder for a shift index.
func (d DayRoles) KetFor(shift int) string {
	switch shift {
	case 0:
		return d.KetKeepers.Shift0
	case 1:
		return d.KetKeepers.Shift1
	case 2:
		return d.KetKeepers.Shift2
	}
	return ""
}

// TagsFor returns the role tags shown next to a name in a given shift cell.
// The key tag only renders on shift 0.
func (d DayRoles) TagsFor(name string, shift int) []string {
	var tags []string
	if shift == 0 && d.KeyKeeper == name {
		tags = append(tags, "key")
	}
	if d.KetFor(shift) == name {
		tags = append(tags, "két")
	}
	return tags
}
