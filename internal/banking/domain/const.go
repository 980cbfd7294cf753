// Package domain defines the banking records cached on the device and the versioned
// containers they are persisted in.
package domain

import (
	"time"

	cryptoDomain "github.com/allisson/bankvault/internal/crypto/domain"
)

const (
	// ProfileStorageKey is the local storage entry holding the profile container.
	ProfileStorageKey = "SECURE_BANKING_DATA"

	// TransactionsStorageKey is the local storage entry holding the transaction list container.
	TransactionsStorageKey = "SECURE_TRANSACTION_DATA"

	// SchemaVersion is the container format version written by this build.
	SchemaVersion = "1.0"

	// DefaultTTL is how long a stored container stays valid after it was written.
	DefaultTTL = 15 * time.Minute
)

// Source tells a caller whether a record came from the encrypted cache or from the
// bundled seed data.
type Source string

const (
	SourceCache Source = "cache"
	SourceSeed  Source = "seed"
)

// Status summarizes the state of the secure cache.
type Status struct {
	StorageType     cryptoDomain.StorageType `json:"storage_type"`
	EncryptionReady bool                     `json:"encryption_ready"`
	HasProfile      bool                     `json:"has_profile"`
	HasTransactions bool                     `json:"has_transactions"`
}
