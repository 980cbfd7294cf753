package domain

import (
	"github.com/allisson/bankvault/internal/errors"
)

// PIN error definitions.
var (
	// ErrPinNotSet indicates no PIN has been configured.
	ErrPinNotSet = errors.Wrap(errors.ErrNotFound, "pin not set")

	// ErrInvalidPin indicates a PIN that is not 4 to 6 digits.
	ErrInvalidPin = errors.Wrap(errors.ErrInvalidInput, "pin must be 4 to 6 digits")

	// ErrPinMismatch indicates the PIN did not match the stored hash.
	ErrPinMismatch = errors.Wrap(errors.ErrUnauthorized, "pin mismatch")

	// ErrPinLocked indicates verification is locked after too many failures.
	ErrPinLocked = errors.Wrap(errors.ErrLocked, "pin locked")
)
