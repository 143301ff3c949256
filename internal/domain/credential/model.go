package credential

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"unicode/utf8"
)

// MinPasswordLength is the minimum length for a new admin password.
const MinPasswordLength = 6

// Domain errors
var (
	ErrWrongPassword    = errors.New("mật khẩu không chính xác")
	ErrConfirmMismatch  = errors.New("mật khẩu xác nhận không khớp")
	ErrPasswordTooShort = errors.New("mật khẩu mới phải có ít nhất 6 ký tự")
	ErrEmptyPassword    = errors.New("password cannot be empty")
)

// Hash returns the lowercase hex SHA-256 digest of the plaintext secret.
// The digest is deterministic so independently hashing clients agree on the
// stored value, and comparison is byte-exact (case-sensitive).
func Hash(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// Verify compares the digest of plaintext against the stored digest.
// PRE: digest is a lowercase hex SHA-256 digest (or empty when unseeded)
// POST: Returns ErrWrongPassword on any mismatch; digest is not mutated
func Verify(digest, plaintext string) error {
	if digest == "" {
		return ErrWrongPassword
	}
	if subtle.ConstantTimeCompare([]byte(Hash(plaintext)), []byte(digest)) != 1 {
		return ErrWrongPassword
	}
	return nil
}

// ValidateNewPassword applies the change-password rules that run before the
// old password is even checked: confirmation must match, then the new
// password must be long enough.
func ValidateNewPassword(newPassword, confirm string) error {
	if newPassword != confirm {
		return ErrConfirmMismatch
	}
	if newPassword == "" {
		return ErrEmptyPassword
	}
	if utf8.RuneCountInString(newPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
