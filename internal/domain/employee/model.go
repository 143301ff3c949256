package employee

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyName     = errors.New("tên nhân viên không được để trống")
	ErrDuplicateName = errors.New("tên nhân viên này đã tồn tại")
	ErrNotFound      = errors.New("employee not found")
)

// Add appends a new trimmed name to the roster.
// PRE: list holds unique names
// POST: Result holds unique names; input list is not mutated
func Add(list []string, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if contains(list, name) {
		return nil, ErrDuplicateName
	}
	out := make([]string, 0, len(list)+1)
	out = append(out, list...)
	return append(out, name), nil
}

// Rename replaces oldName with the trimmed newName, keeping its position.
// Renaming to the current name is a no-op, not a duplicate.
func Rename(list []string, oldName, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	idx := index(list, oldName)
	if idx < 0 {
		return nil, ErrNotFound
	}
	if contains(list, name) && name != oldName {
		return nil, ErrDuplicateName
	}
	out := make([]string, len(list))
	copy(out, list)
	out[idx] = name
	return out, nil
}

// Remove deletes name from the roster, preserving the order of the rest.
func Remove(list []string, name string) ([]string, error) {
	idx := index(list, name)
	if idx < 0 {
		return nil, ErrNotFound
	}
	out := make([]string, 0, len(list)-1)
	out = append(out, list[:idx]...)
	return append(out, list[idx+1:]...), nil
}

func contains(list []string, name string) bool {
	return index(list, name) >= 0
}

func index(list []string, name string) int {
	for i, n := range list {
		if n == name {
			return i
		}
	}
	return -1
}
