package livestore

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"shiftreg/internal/adapters/storage"
)

// maxUpdateAttempts is the conditional-write retry budget. Conflicts are rare
// (human-paced writers, per-slot documents), so a handful of retries with a
// short linear backoff is plenty before declaring the store too contended.
const maxUpdateAttempts = 16

// SQLiteStore implements Store on a single document table.
type SQLiteStore struct {
	db  storage.SQLDB
	hub *hub
}

// Compile-time check that *SQLiteStore satisfies Store.
var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore creates a live store backed by the given database.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db, hub: newHub()}
}

// Get retrieves the document at path.
// PRE: path is non-empty
// POST: Returns the raw JSON value or ErrNotFound
func (s *SQLiteStore) Get(ctx context.Context, path string) (json.RawMessage, error) {
	row := s.db.QueryRowContext(ctx, "SELECT value FROM document WHERE path = ?", path)
	var value string
	err := row.Scan(&value)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("get %s: %w", path, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(value), nil
}

// GetPrefix retrieves all documents under a path prefix.
// PRE: prefix contains no SQL LIKE metacharacters (paths never do)
// POST: Returns a possibly empty map keyed by full path
func (s *SQLiteStore) GetPrefix(ctx context.Context, prefix string) (map[string]json.RawMessage, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT path, value FROM document WHERE path LIKE ? || '%'", prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]json.RawMessage)
	for rows.Next() {
		var path, value string
		if err := rows.Scan(&path, &value); err != nil {
			return nil, err
		}
		result[path] = json.RawMessage(value)
	}
	return result, rows.Err()
}

// Set overwrites the document at path unconditionally and notifies watchers.
// PRE: value is valid JSON
// POST: Document exists with the given value; version bumped
func (s *SQLiteStore) Set(ctx context.Context, path string, value json.RawMessage) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO document (path, value, version, updated_at) VALUES (?, ?, 1, ?)
		 ON CONFLICT(path) DO UPDATE SET value=excluded.value, version=document.version+1, updated_at=excluded.updated_at`,
		path, string(value), nowUTC(),
	)
	if err != nil {
		return err
	}
	s.hub.Publish(Change{Path: path, Value: value})
	return nil
}

// Update applies fn to the document at path under optimistic concurrency.
// The transform runs against the value observed in this attempt; the commit
// only succeeds if the stored version is still the observed one, otherwise
// the whole read-transform-write cycle is retried. A transform returning a
// value equal to the current one commits nothing and notifies nobody.
// PRE: fn is pure
// POST: On success the returned value was computed from the latest committed
// value; slot invariants enforced by fn therefore hold under concurrency
func (s *SQLiteStore) Update(ctx context.Context, path string, fn Transform) (json.RawMessage, error) {
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * time.Millisecond)
		}

		var current json.RawMessage
		var version int64
		row := s.db.QueryRowContext(ctx, "SELECT value, version FROM document WHERE path = ?", path)
		var value string
		err := row.Scan(&value, &version)
		switch {
		case err == sql.ErrNoRows:
			current, version = nil, 0
		case err != nil:
			return nil, err
		default:
			current = json.RawMessage(value)
		}

		next, err := fn(current)
		if err != nil {
			return nil, err
		}
		if jsonEqual(current, next) {
			return current, nil
		}

		var res sql.Result
		if version == 0 {
			res, err = s.db.ExecContext(ctx,
				"INSERT INTO document (path, value, version, updated_at) VALUES (?, ?, 1, ?) ON CONFLICT(path) DO NOTHING",
				path, string(next), nowUTC(),
			)
		} else {
			res, err = s.db.ExecContext(ctx,
				"UPDATE document SET value = ?, version = version + 1, updated_at = ? WHERE path = ? AND version = ?",
				string(next), nowUTC(), path, version,
			)
		}
		if err != nil {
			return nil, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return nil, err
		}
		if affected == 1 {
			s.hub.Publish(Change{Path: path, Value: next})
			return next, nil
		}
		// Another writer committed first; retry against the new value.
	}
	return nil, fmt.Errorf("update %s: %w", path, ErrConflict)
}

// Delete removes the document at path and notifies watchers.
// POST: No document exists at path; missing documents are a silent no-op
func (s *SQLiteStore) Delete(ctx context.Context, path string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM document WHERE path = ?", path)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected > 0 {
		s.hub.Publish(Change{Path: path, Deleted: true})
	}
	return nil
}

// Watch subscribes to committed changes under prefix.
func (s *SQLiteStore) Watch(prefix string) (<-chan Change, func()) {
	return s.hub.Watch(prefix)
}

// jsonEqual reports whether two raw values are equivalent, treating nil and
// JSON null as equal (a missing document reads as null, like the original
// database did).
func jsonEqual(a, b json.RawMessage) bool {
	na := len(a) == 0 || bytes.Equal(a, []byte("null"))
	nb := len(b) == 0 || bytes.Equal(b, []byte("null"))
	if na || nb {
		return na == nb
	}
	return bytes.Equal(a, b)
}

func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
