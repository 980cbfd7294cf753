package domain

import (
	"github.com/allisson/bankvault/internal/errors"
)

// Banking cache error definitions.
var (
	// ErrProfileNotFound indicates no valid profile container is stored.
	ErrProfileNotFound = errors.Wrap(errors.ErrNotFound, "banking profile not found")

	// ErrTransactionsNotFound indicates no valid transaction list container is stored.
	ErrTransactionsNotFound = errors.Wrap(errors.ErrNotFound, "transactions not found")

	// ErrInvalidTransaction indicates a transaction failed validation.
	ErrInvalidTransaction = errors.Wrap(errors.ErrInvalidInput, "invalid transaction")

	// ErrInvalidProfile indicates a profile failed validation.
	ErrInvalidProfile = errors.Wrap(errors.ErrInvalidInput, "invalid banking profile")

	// ErrInvalidTransactionType indicates a transaction type other than debit or credit.
	ErrInvalidTransactionType = errors.Wrap(errors.ErrInvalidInput, "invalid transaction type")

	// ErrContainerExpired indicates a stored container is older than the TTL.
	ErrContainerExpired = errors.New("container expired")

	// ErrVersionMismatch indicates a stored container was written with another schema version.
	ErrVersionMismatch = errors.New("container version mismatch")
)
