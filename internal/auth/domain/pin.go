package domain

import (
	"time"

	customValidation "github.com/allisson/bankvault/internal/validation"
)

var pinFormat = customValidation.PinFormat{MinLength: MinPinLength, MaxLength: MaxPinLength}

// ValidatePin returns ErrInvalidPin unless pin is 4 to 6 ASCII digits.
func ValidatePin(pin string) error {
	if err := pinFormat.Validate(pin); err != nil {
		return ErrInvalidPin
	}
	return nil
}

// Attempts tracks consecutive failed verifications.
type Attempts struct {
	Failed      int        `json:"failed"`
	LockedUntil *time.Time `json:"locked_until,omitempty"`
}

// IsLocked reports whether verification is locked at now.
func (a Attempts) IsLocked(now time.Time) bool {
	return a.LockedUntil != nil && now.Before(*a.LockedUntil)
}

// IsZero reports whether there is nothing to remember.
func (a Attempts) IsZero() bool {
	return a.Failed == 0 && a.LockedUntil == nil
}

// RecordFailure counts one more failure and locks for lockout once maxAttempts is
// reached. A lock that already expired starts a fresh count.
func (a Attempts) RecordFailure(now time.Time, maxAttempts int, lockout time.Duration) Attempts {
	if a.LockedUntil != nil && !a.IsLocked(now) {
		a = Attempts{}
	}
	a.Failed++
	if maxAttempts > 0 && a.Failed >= maxAttempts {
		until := now.Add(lockout)
		a.LockedUntil = &until
	}
	return a
}
