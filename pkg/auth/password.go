// Package auth provides password hashing and session token helpers used by
// the user account usecases.
package auth

import (
	"errors"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is fixed above the library default. Raising it is a deliberate
// operational decision, not a config knob.
const BcryptCost = 12

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// ErrWeakPassword is returned when a password fails the strength policy.
var ErrWeakPassword = errors.New("password must be at least 8 characters and contain upper-case, lower-case and digit")

// HashPassword hashes a cleartext password with bcrypt. The cleartext is
// never persisted.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword verifies a cleartext password against a stored bcrypt hash.
// bcrypt's comparison does not leak where the mismatch occurred.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength enforces the password policy: minimum length,
// at least one upper-case letter, one lower-case letter and one digit.
func ValidatePasswordStrength(password string) error {
	if len(password) < MinPasswordLength {
		return ErrWeakPassword
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return ErrWeakPassword
	}
	return nil
}
