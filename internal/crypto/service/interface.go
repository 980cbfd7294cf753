// Package service provides the cryptographic services that protect cached banking data:
// device key management, AES-256-CBC with HMAC-SHA256 encrypt-then-MAC of strings and
// banking records, and KMS keeper access for the primary key store.
package service

import (
	"context"

	bankingDomain "github.com/allisson/bankvault/internal/banking/domain"
	cryptoDomain "github.com/allisson/bankvault/internal/crypto/domain"
)

// KeyStore persists named string values. Get returns errors.ErrNotFound for an absent
// name and Delete of an absent name is not an error.
type KeyStore interface {
	Get(ctx context.Context, name string) (string, error)
	Set(ctx context.Context, name, value string) error
	Delete(ctx context.Context, name string) error
}

// BlockCipher encrypts and decrypts with a 32-byte key and a 16-byte IV.
type BlockCipher interface {
	Encrypt(key, iv, plaintext []byte) ([]byte, error)
	Decrypt(key, iv, ciphertext []byte) ([]byte, error)
}

// MAC computes a message authentication code of data under key.
type MAC interface {
	Sum(key, data []byte) []byte
}

// KeyManager owns the lifecycle of the two device keys.
type KeyManager interface {
	// GetOrCreateKey returns the hex-encoded key of the given kind, generating and
	// persisting a new one when no store holds it.
	GetOrCreateKey(ctx context.Context, kind cryptoDomain.KeyKind) (string, error)

	// HasKey reports whether a key of the given kind exists in either store.
	HasKey(ctx context.Context, kind cryptoDomain.KeyKind) (bool, error)

	// ClearKeys deletes both keys from both stores.
	ClearKeys(ctx context.Context) error

	// StorageType reports which store new keys are written to.
	StorageType() cryptoDomain.StorageType
}

// CipherService encrypts and decrypts strings and banking records.
type CipherService interface {
	EncryptValue(ctx context.Context, plaintext string) (cryptoDomain.EncryptedValue, error)
	DecryptValue(ctx context.Context, value cryptoDomain.EncryptedValue) (string, error)

	EncryptProfile(ctx context.Context, profile bankingDomain.Profile) (bankingDomain.EncryptedProfile, error)
	DecryptProfile(ctx context.Context, profile bankingDomain.EncryptedProfile) (bankingDomain.Profile, error)

	EncryptTransaction(
		ctx context.Context,
		transaction bankingDomain.Transaction,
	) (bankingDomain.EncryptedTransaction, error)
	DecryptTransaction(
		ctx context.Context,
		transaction bankingDomain.EncryptedTransaction,
	) (bankingDomain.Transaction, error)

	EncryptTransactions(
		ctx context.Context,
		transactions []bankingDomain.Transaction,
	) ([]bankingDomain.EncryptedTransaction, error)
	DecryptTransactions(
		ctx context.Context,
		transactions []bankingDomain.EncryptedTransaction,
	) ([]bankingDomain.Transaction, error)

	// ClearKeys deletes the device keys, making every stored record undecryptable.
	ClearKeys(ctx context.Context) error

	// IsReady reports whether a confidentiality key exists.
	IsReady(ctx context.Context) (bool, error)

	StorageType() cryptoDomain.StorageType
}
