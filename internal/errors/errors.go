// Package errors holds the sentinel errors shared by the banking, auth and crypto
// layers. Use cases wrap them with context, and the HTTP and CLI layers map them to
// status codes and exit messages with Is.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means no cached record, transaction or key exists under the name.
	ErrNotFound = errors.New("not found")

	// ErrConflict means the write clashes with stored data, such as a duplicate
	// transaction id.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput means a request body, flag or stored payload failed validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized means the PIN did not match.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden means the operation is not allowed in the current state.
	ErrForbidden = errors.New("forbidden")

	// ErrLocked means PIN verification is locked after too many failures.
	ErrLocked = errors.New("locked")
)

// New is errors.New.
func New(message string) error {
	return errors.New(message)
}

// Wrap prefixes err with message, keeping it matchable by Is. A nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is is errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Join is errors.Join.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
