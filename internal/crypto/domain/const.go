// Package domain defines the cryptographic domain model for protecting cached banking data.
//
// Two independent 256-bit keys are maintained per device: a confidentiality key used
// with AES-256-CBC and an integrity key used with HMAC-SHA256. Every protected string is
// stored as an EncryptedValue produced by the encrypt-then-MAC construction.
package domain

// KeyKind identifies which of the two device keys is requested.
type KeyKind string

const (
	// ConfidentialityKey encrypts values with AES-256-CBC.
	ConfidentialityKey KeyKind = "confidentiality"

	// IntegrityKey authenticates ciphertext and IV with HMAC-SHA256.
	IntegrityKey KeyKind = "integrity"
)

// StorageType reports which key store holds the device keys.
type StorageType string

const (
	// StoragePrimary is the KMS-sealed secret store.
	StoragePrimary StorageType = "primary"

	// StorageFallback is plain local key-value storage, used when the primary store is unavailable.
	StorageFallback StorageType = "fallback"
)

const (
	// KeySize is the size in bytes of both device keys (256 bits).
	KeySize = 32

	// IVSize is the AES block size; a fresh IV of this size is drawn for every encryption.
	IVSize = 16

	// MACSize is the HMAC-SHA256 output size in bytes.
	MACSize = 32
)

// Key names used in each store. The fallback store uses distinct names so that keys
// written by either store never shadow each other.
const (
	PrimaryEncryptionKeyName  = "BANKING_ENCRYPTION_KEY"
	PrimaryHMACKeyName        = "BANKING_HMAC_KEY"
	FallbackEncryptionKeyName = "FALLBACK_BANKING_KEY"
	FallbackHMACKeyName       = "FALLBACK_BANKING_HMAC_KEY"
)

// PrimaryName returns the primary store entry name for the key kind.
func (k KeyKind) PrimaryName() string {
	if k == IntegrityKey {
		return PrimaryHMACKeyName
	}
	return PrimaryEncryptionKeyName
}

// FallbackName returns the fallback store entry name for the key kind.
func (k KeyKind) FallbackName() string {
	if k == IntegrityKey {
		return FallbackHMACKeyName
	}
	return FallbackEncryptionKeyName
}

// Valid reports whether k is one of the supported key kinds.
func (k KeyKind) Valid() bool {
	return k == ConfidentialityKey || k == IntegrityKey
}
