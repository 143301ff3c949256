// Package credential persists the admin password digest.
package credential

import "context"

// Store persists the admin credential.
type Store interface {
	// GetDigest returns the stored password digest, or "" if none is set.
	GetDigest(ctx context.Context) (string, error)
	SetDigest(ctx context.Context, digest string) error
	// SeedDigest writes digest only if no credential exists yet.
	SeedDigest(ctx context.Context, digest string) error
}
