// Package service provides PIN hashing with Argon2id.
package service

import (
	"github.com/allisson/go-pwdhash"

	apperrors "github.com/allisson/bankvault/internal/errors"
)

// PinHasher hashes PINs and verifies them against stored hashes.
type PinHasher interface {
	Hash(pin string) (string, error)
	// Compare reports whether pin matches hash. Malformed hashes never match.
	Compare(pin, hash string) bool
}

type argon2PinHasher struct {
	hasher *pwdhash.PasswordHasher
}

func (a *argon2PinHasher) Hash(pin string) (string, error) {
	hash, err := a.hasher.Hash([]byte(pin))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash pin")
	}
	return hash, nil
}

func (a *argon2PinHasher) Compare(pin, hash string) bool {
	ok, err := a.hasher.Verify([]byte(pin), hash)
	if err != nil {
		return false
	}
	return ok
}

// NewPinHasher creates a PinHasher using the interactive Argon2id policy, which keeps
// a verification fast enough for an unlock prompt.
func NewPinHasher() PinHasher {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyInteractive),
	)
	if err != nil {
		panic(err)
	}
	return &argon2PinHasher{hasher: hasher}
}
