package domain

import "context"

// KMSKeeper seals and unseals small secrets with a key held by a KMS provider.
// *secrets.Keeper from gocloud.dev/secrets satisfies this interface.
type KMSKeeper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}
