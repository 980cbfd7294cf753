package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeKey(t *testing.T) {
	raw := make([]byte, KeySize)
	for i := range raw {
		raw[i] = byte(i)
	}

	encoded, err := EncodeKey(raw)
	require.NoError(t, err)
	assert.Len(t, encoded, 64)
	assert.Equal(t, strings.ToLower(encoded), encoded)

	decoded, err := DecodeKey(encoded)
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
}

func TestEncodeKey_InvalidSize(t *testing.T) {
	_, err := EncodeKey(make([]byte, 16))
	assert.ErrorIs(t, err, ErrInvalidKeySize)
}

func TestDecodeKey_Errors(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{name: "not hex", key: strings.Repeat("zz", KeySize)},
		{name: "too short", key: "abcd"},
		{name: "too long", key: strings.Repeat("ab", KeySize+1)},
		{name: "empty", key: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeKey(tt.key)
			assert.ErrorIs(t, err, ErrInvalidKeySize)
		})
	}
}

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3}
	Zero(b)
	assert.Equal(t, []byte{0, 0, 0}, b)

	assert.NotPanics(t, func() { Zero(nil) })
}

func TestKeyKind_Names(t *testing.T) {
	assert.Equal(t, "BANKING_ENCRYPTION_KEY", ConfidentialityKey.PrimaryName())
	assert.Equal(t, "BANKING_HMAC_KEY", IntegrityKey.PrimaryName())
	assert.Equal(t, "FALLBACK_BANKING_KEY", ConfidentialityKey.FallbackName())
	assert.Equal(t, "FALLBACK_BANKING_HMAC_KEY", IntegrityKey.FallbackName())

	assert.True(t, ConfidentialityKey.Valid())
	assert.True(t, IntegrityKey.Valid())
	assert.False(t, KeyKind("signing").Valid())
}

func TestEncryptedValue_IsZero(t *testing.T) {
	assert.True(t, EncryptedValue{}.IsZero())
	assert.False(t, EncryptedValue{IV: "00"}.IsZero())
}
