package employee

import "context"

// Transform rewrites the roster name list. It receives the current list (nil
// if never seeded) and returns the list to persist.
type Transform func(current []string) ([]string, error)

// Store persists the employee roster as a single ordered name list.
type Store interface {
	List(ctx context.Context) ([]string, error)
	Save(ctx context.Context, names []string) error
	Update(ctx context.Context, fn Transform) ([]string, error)
}
