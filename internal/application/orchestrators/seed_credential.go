package orchestrators

import (
	"context"
	"log/slog"

	"shiftreg/internal/domain/credential"
)

// CredentialStoreForSeed defines the store interface needed by seeding.
type CredentialStoreForSeed interface {
	SeedDigest(ctx context.Context, digest string) error
}

// SeedCredentialDeps holds dependencies for SeedCredential.
type SeedCredentialDeps struct {
	CredentialStore CredentialStoreForSeed
}

// ExecuteSeedCredential installs the initial admin password digest at
// startup. An already-seeded credential is left alone, so restarts never
// clobber a rotated password.
func ExecuteSeedCredential(ctx context.Context, password string, deps SeedCredentialDeps) error {
	if password == "" {
		return credential.ErrEmptyPassword
	}
	if err := deps.CredentialStore.SeedDigest(ctx, credential.Hash(password)); err != nil {
		return err
	}
	slog.Info("auth_event", "event", "credential_seeded")
	return nil
}
