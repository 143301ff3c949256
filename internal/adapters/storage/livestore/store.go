// Package livestore is a path-addressed document store over SQLite. It plays
// the role the original deployment gave its real-time database: plain
// overwrites for low-contention paths, a conditional-write Update primitive
// for contended ones, and per-prefix change feeds for live subscribers.
package livestore

import (
	"context"
	"encoding/json"
	"errors"
)

// Store errors
var (
	// ErrNotFound is returned by Get for paths with no document.
	ErrNotFound = errors.New("document not found")
	// ErrConflict is returned by Update when the retry budget is exhausted
	// without committing against the latest value. Callers surface this as a
	// generic retryable failure.
	ErrConflict = errors.New("update conflict: retry budget exhausted")
)

// Transform computes the next value of a document from the current one.
// current is nil when the document does not exist. Transforms must be pure:
// Update may call them several times before committing. Returning a value
// equal to current commits nothing.
type Transform func(current json.RawMessage) (json.RawMessage, error)

// Change is one committed mutation delivered to watchers.
type Change struct {
	Path    string
	Value   json.RawMessage
	Deleted bool
}

// Store is the live store contract.
type Store interface {
	// Get returns the document at path, or ErrNotFound.
	Get(ctx context.Context, path string) (json.RawMessage, error)
	// GetPrefix returns every document whose path starts with prefix.
	GetPrefix(ctx context.Context, prefix string) (map[string]json.RawMessage, error)
	// Set overwrites the document at path unconditionally (last write wins).
	Set(ctx context.Context, path string, value json.RawMessage) error
	// Update applies fn to the latest value under optimistic concurrency:
	// the write only commits if no other writer changed the document since
	// it was read, retrying on conflict. Returns the committed value.
	Update(ctx context.Context, path string, fn Transform) (json.RawMessage, error)
	// Delete removes the document at path. Missing documents are a no-op.
	Delete(ctx context.Context, path string) error
	// Watch subscribes to committed changes under prefix. The cancel func
	// tears the subscription down; callers must invoke it when the watched
	// scope (e.g. the selected week) changes or the consumer goes away.
	Watch(prefix string) (<-chan Change, func())
}
