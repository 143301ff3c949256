package orchestrators

import (
	"context"
	"log/slog"

	"shiftreg/internal/domain/credential"
)

// ChangeAdminPasswordInput carries input for the change-password orchestrator.
type ChangeAdminPasswordInput struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

// CredentialStoreForChange defines the store interface needed by ChangeAdminPassword.
type CredentialStoreForChange interface {
	GetDigest(ctx context.Context) (string, error)
	SetDigest(ctx context.Context, digest string) error
}

// ChangeAdminPasswordDeps holds dependencies for ChangeAdminPassword.
type ChangeAdminPasswordDeps struct {
	CredentialStore CredentialStoreForChange
}

// ExecuteChangeAdminPassword rotates the shared admin password.
// Validation order is fixed: confirm mismatch, then length, then the current
// password check, so the user fixes form mistakes before being told the old
// password is wrong.
// POST: On success the stored digest is SHA-256(new password)
func ExecuteChangeAdminPassword(ctx context.Context, input ChangeAdminPasswordInput, deps ChangeAdminPasswordDeps) error {
	if err := credential.ValidateNewPassword(input.NewPassword, input.ConfirmPassword); err != nil {
		return err
	}

	digest, err := deps.CredentialStore.GetDigest(ctx)
	if err != nil {
		return err
	}
	if err := credential.Verify(digest, input.CurrentPassword); err != nil {
		return err
	}

	if err := deps.CredentialStore.SetDigest(ctx, credential.Hash(input.NewPassword)); err != nil {
		return err
	}
	slog.Info("auth_event", "event", "admin_password_changed")
	return nil
}
