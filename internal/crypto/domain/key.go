package domain

import (
	"encoding/hex"
	"fmt"
)

// EncodeKey hex-encodes raw key material for storage.
func EncodeKey(raw []byte) (string, error) {
	if len(raw) != KeySize {
		return "", fmt.Errorf("%w: got %d bytes", ErrInvalidKeySize, len(raw))
	}
	return hex.EncodeToString(raw), nil
}

// DecodeKey parses a hex-encoded key and checks it is exactly KeySize bytes.
// Callers should Zero the returned slice once done with it.
func DecodeKey(hexKey string) ([]byte, error) {
	raw, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: not hex encoded", ErrInvalidKeySize)
	}
	if len(raw) != KeySize {
		Zero(raw)
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeySize, len(raw))
	}
	return raw, nil
}

// Zero overwrites a byte slice with zeros to clear key material from memory.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
