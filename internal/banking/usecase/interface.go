// Package usecase implements the secure cache store for banking data: a versioned,
// TTL-bound, encrypted container for the profile and another for the transaction list,
// plus the lifecycle operations that seed and reset them.
//
// Integrity, decryption, parse, expiry and version failures are contained here: the
// offending container is deleted and the read reports absence. Storage and
// key-management failures propagate to the caller.
package usecase

import (
	"context"

	bankingDomain "github.com/allisson/bankvault/internal/banking/domain"
	cryptoDomain "github.com/allisson/bankvault/internal/crypto/domain"
)

// ContainerStore persists serialized containers by storage key.
type ContainerStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// ProfileUseCase manages the cached banking profile.
type ProfileUseCase interface {
	// Store encrypts and persists profile, replacing any stored one.
	Store(ctx context.Context, profile bankingDomain.Profile) error
	// Get returns the stored profile or ErrProfileNotFound.
	Get(ctx context.Context) (bankingDomain.Profile, error)
	// Update merges the present fields of partial onto the stored profile (or onto an
	// empty profile when none is stored) and persists the result.
	Update(ctx context.Context, partial bankingDomain.Profile) (bankingDomain.Profile, error)
	Clear(ctx context.Context) error
	Has(ctx context.Context) (bool, error)
	// MaskedAccountNumber returns the stored account number masked for display.
	MaskedAccountNumber(ctx context.Context) (string, error)
}

// TransactionUseCase manages the cached transaction list.
type TransactionUseCase interface {
	Store(ctx context.Context, transactions []bankingDomain.Transaction) error
	// List returns the stored transactions or ErrTransactionsNotFound.
	List(ctx context.Context) ([]bankingDomain.Transaction, error)
	// Add appends transaction to the stored list, generating an identifier when it has none.
	Add(ctx context.Context, transaction bankingDomain.Transaction) (bankingDomain.Transaction, error)
	// Update applies update to the first transaction with the given id.
	Update(ctx context.Context, id string, update bankingDomain.TransactionUpdate) error
	// Delete removes the first transaction with the given id.
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	Has(ctx context.Context) (bool, error)
}

// LifecycleUseCase seeds, inspects and resets the secure cache.
type LifecycleUseCase interface {
	// InitializeWithDefaults stores seed when no valid profile is stored and reports
	// whether it did.
	InitializeWithDefaults(ctx context.Context, seed bankingDomain.Profile) (bool, error)
	// InitializeWithDefaultTransactions stores seed when no valid transaction list is
	// stored and reports whether it did.
	InitializeWithDefaultTransactions(ctx context.Context, seed []bankingDomain.Transaction) (bool, error)
	// SecurityReset deletes both containers and both device keys.
	SecurityReset(ctx context.Context) error
	StorageType() cryptoDomain.StorageType
	IsEncryptionReady(ctx context.Context) (bool, error)
	Status(ctx context.Context) (*bankingDomain.Status, error)
}
