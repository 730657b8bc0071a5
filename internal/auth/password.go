package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Password length bounds enforced at signup. The maximum is bcrypt's
// effective input ceiling: bytes past 72 are silently ignored by the
// primitive, so letting longer passwords through would hash a truncation.
const (
	MinPasswordLength = 10
	MaxPasswordLength = 72
)

var (
	ErrPasswordEmpty   = errors.New("password must not be empty")
	ErrPasswordTooLong = errors.New("password exceeds maximum length of 72 bytes")
)

// HashPassword creates a bcrypt hash of the password. The embedded random
// salt makes repeated calls with the same input produce distinct hashes.
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", ErrPasswordEmpty
	}
	if len(password) > MaxPasswordLength {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a password with its hash using bcrypt's own
// comparison. It returns false for a mismatch and for a malformed hash
// rather than distinguishing the two, so every invalid-credential path
// looks the same to callers.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
