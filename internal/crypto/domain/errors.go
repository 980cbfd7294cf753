package domain

import (
	"github.com/allisson/bankvault/internal/errors"
)

// Cryptographic operation error definitions.
//
// Integrity and decryption failures wrap ErrInvalidInput: the stored value is treated
// as corrupt and the cache layer discards it. Key-management failures are not wrapped
// in a domain sentinel because they indicate an environment problem the caller must
// surface.
var (
	// ErrInvalidKeySize indicates a key that does not decode to exactly 32 bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrUnsupportedKeyKind indicates a key kind other than confidentiality or integrity.
	ErrUnsupportedKeyKind = errors.Wrap(errors.ErrInvalidInput, "unsupported key kind")

	// ErrIntegrityCheckFailed indicates the MAC recomputed over ciphertext and IV does not
	// match the stored MAC. Decryption is never attempted after this error.
	ErrIntegrityCheckFailed = errors.Wrap(errors.ErrInvalidInput, "integrity check failed")

	// ErrDecryptionFailed indicates an authenticated value could not be turned back into
	// plaintext (malformed encoding, bad padding, invalid UTF-8, unparsable field).
	//
	// The specific cause is not disclosed to callers.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "decryption failed")

	// ErrKeyManagement indicates a key could not be read from or written to its store.
	ErrKeyManagement = errors.New("key management failure")

	// ErrKeyStoreUnavailable indicates the primary key store failed its capability probe.
	ErrKeyStoreUnavailable = errors.New("key store unavailable")
)
