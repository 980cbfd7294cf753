// Package usecase implements setting and verifying the device PIN with lockout after
// repeated failures.
package usecase

import (
	"context"
)

// PinStore persists named string values. Get returns errors.ErrNotFound for an absent
// name.
type PinStore interface {
	Get(ctx context.Context, name string) (string, error)
	Set(ctx context.Context, name, value string) error
	Delete(ctx context.Context, name string) error
}

// PinUseCase manages the device PIN.
type PinUseCase interface {
	// SetPin validates, hashes and stores pin, clearing any failed-attempt state.
	SetPin(ctx context.Context, pin string) error

	// VerifyPin returns nil when pin matches. It returns ErrPinMismatch for a wrong PIN,
	// ErrPinLocked while locked and ErrPinNotSet when no PIN is configured.
	VerifyPin(ctx context.Context, pin string) error

	HasPin(ctx context.Context) (bool, error)
	ClearPin(ctx context.Context) error
}
