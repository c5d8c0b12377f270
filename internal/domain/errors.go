// Package domain holds the error taxonomy shared by all repositories and
// usecase handlers. Repositories translate backend errors into these
// sentinels so callers can branch with errors.Is instead of matching
// driver-specific error strings.
package domain

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound reports a lookup by identity or unique key that matched no row.
	ErrNotFound = errors.New("not found")
	// ErrConflict reports a uniqueness or business-rule violation.
	ErrConflict = errors.New("conflict")
	// ErrIntegrityViolation reports a reference to a non-existent related entity.
	ErrIntegrityViolation = errors.New("integrity violation")
	// ErrInvalidCredentials is returned for every authentication failure,
	// regardless of which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidArgument reports input rejected by validation before any write.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Translate maps GORM errors onto the domain taxonomy. The *gorm.DB handle
// must be opened with TranslateError enabled so driver errors arrive as
// gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated. Unrecognized errors
// pass through untouched and count as infrastructure failures.
func Translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrIntegrityViolation
	default:
		return err
	}
}

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsConflict reports whether err wraps ErrConflict.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }
