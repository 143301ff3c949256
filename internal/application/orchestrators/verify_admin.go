package orchestrators

import (
	"context"
	"log/slog"

	"shiftreg/internal/domain/credential"
)

// CredentialStoreForVerify defines the store interface needed by admin checks.
type CredentialStoreForVerify interface {
	GetDigest(ctx context.Context) (string, error)
}

// VerifyAdminDeps holds dependencies for VerifyAdmin.
type VerifyAdminDeps struct {
	CredentialStore CredentialStoreForVerify
}

// ExecuteVerifyAdmin checks the shared admin password against the stored
// digest. Every password-gated admin action funnels through this check.
// POST: Returns nil only when the password matches
func ExecuteVerifyAdmin(ctx context.Context, password string, deps VerifyAdminDeps) error {
	digest, err := deps.CredentialStore.GetDigest(ctx)
	if err != nil {
		return err
	}
	if err := credential.Verify(digest, password); err != nil {
		slog.Info("auth_event", "event", "admin_verify_failed")
		return err
	}
	return nil
}
