package credential

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"shiftreg/internal/adapters/storage/livestore"
)

const digestPath = "systemConfig/adminPasswordHash"

// LiveStore implements Store on the live document store.
type LiveStore struct {
	docs livestore.Store
}

// NewLiveStore creates a credential store backed by the given document store.
func NewLiveStore(docs livestore.Store) *LiveStore {
	return &LiveStore{docs: docs}
}

// GetDigest reads the stored digest.
// POST: A missing credential reads as "", not an error.
func (s *LiveStore) GetDigest(ctx context.Context) (string, error) {
	raw, err := s.docs.Get(ctx, digestPath)
	if errors.Is(err, livestore.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	var digest string
	if err := json.Unmarshal(raw, &digest); err != nil {
		return "", fmt.Errorf("decode %s: %w", digestPath, err)
	}
	return digest, nil
}

// SetDigest overwrites the stored digest.
// PRE: digest is a lowercase hex SHA-256 digest
func (s *LiveStore) SetDigest(ctx context.Context, digest string) error {
	raw, err := json.Marshal(digest)
	if err != nil {
		return err
	}
	return s.docs.Set(ctx, digestPath, raw)
}

// SeedDigest writes digest only when no credential exists. Racing seeders
// resolve through the store's optimistic update, so exactly one digest wins.
func (s *LiveStore) SeedDigest(ctx context.Context, digest string) error {
	_, err := s.docs.Update(ctx, digestPath, func(current json.RawMessage) (json.RawMessage, error) {
		if current != nil {
			return current, nil
		}
		return json.Marshal(digest)
	})
	return err
}
