package roles

import (
	"errors"
	"reflect"
	"testing"
)

// TestAssign_KeyOnlyShiftZero verifies the key role is rejected on shifts 1
// and 2 and leaves the record untouched.
func TestAssign_KeyOnlyShiftZero(t *testing.T) {
	for _, shift := range []int{1, 2} {
		d := DayRoles{KeyKeeper: "Anh"}
		err := d.Assign("Binh", RoleKey, shift)
		if !errors.Is(err, ErrKeyRoleShift) {
			t.Errorf("shift %d: err = %v, want ErrKeyRoleShift", shift, err)
		}
		if d.KeyKeeper != "Anh" {
			t.Errorf("shift %d: KeyKeeper changed to %q", shift, d.KeyKeeper)
		}
	}

	d := DayRoles{}
	if err := d.Assign("Binh", RoleKey, 0); err != nil {
		t.Fatalf("Assign key shift 0: %v", err)
	}
	if d.KeyKeeper != "Binh" {
		t.Errorf("KeyKeeper = %q, want Binh", d.KeyKeeper)
	}
}

// TestAssign_KetPerShift verifies safe holders are independent per shift and
// overwrite the prior holder.
func TestAssign_KetPerShift(t *testing.T) {
	d := DayRoles{}
	for shift, name := range []string{"Anh", "Binh", "Chi"} {
		if err := d.Assign(name, RoleKet, shift); err != nil {
			t.Fatalf("Assign ket shift %d: %v", shift, err)
		}
	}
	want := KetKeepers{Shift0: "Anh", Shift1: "Binh", Shift2: "Chi"}
	if !reflect.DeepEqual(d.KetKeepers, want) {
		t.Errorf("KetKeepers = %+v, want %+v", d.KetKeepers, want)
	}

	// Overwrite: last writer wins
	if err := d.Assign("Dao", RoleKet, 1); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if d.KetKeepers.Shift1 != "Dao" {
		t.Errorf("Shift1 = %q, want Dao", d.KetKeepers.Shift1)
	}
}

// TestAssign_Validation covers unknown roles, bad indexes, and empty names.
func TestAssign_Validation(t *testing.T) {
	d := DayRoles{}
	if err := d.Assign("Anh", "boss", 0); !errors.Is(err, ErrUnknownRole) {
		t.Errorf("unknown role: err = %v", err)
	}
	if err := d.Assign("Anh", RoleKet, 3); !errors.Is(err, ErrInvalidSlot) {
		t.Errorf("bad shift: err = %v", err)
	}
	if err := d.Assign("", RoleKet, 0); !errors.Is(err, ErrEmptyName) {
		t.Errorf("empty name: err = %v", err)
	}
}

// TestTagsFor verifies role tag rendering rules per shift.
func TestTagsFor(t *testing.T) {
	d := DayRoles{KeyKeeper: "Anh", KetKeepers: KetKeepers{Shift0: "Anh", Shift1: "Binh"}}

	if got := d.TagsFor("Anh", 0); !reflect.DeepEqual(got, []string{"key", "két"}) {
		t.Errorf("Anh shift 0 tags = %v", got)
	}
	// Key tag never renders outside shift 0
	if got := d.TagsFor("Anh", 1); got != nil {
		t.Errorf("Anh shift 1 tags = %v, want none", got)
	}
	if got := d.TagsFor("Binh", 1); !reflect.DeepEqual(got, []string{"két"}) {
		t.Errorf("Binh shift 1 tags = %v", got)
	}
}

// TestDayKey verifies the map key format.
func TestDayKey(t *testing.T) {
	if got := DayKey(4); got != "day4" {
		t.Errorf("DayKey(4) = %q", got)
	}
}
