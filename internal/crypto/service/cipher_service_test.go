package service

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/bankvault/internal/crypto/domain"
	"github.com/allisson/bankvault/internal/crypto/service/mocks"
)

func TestCipherService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCipherService(t)

	inputs := []string{
		"a",
		"Alex Morgan",
		"1234567890",
		"3250",
		"-5.47",
		"exactly sixteen!",
		"Café ☕ 日本語",
		strings.Repeat("long value ", 200),
	}

	for _, input := range inputs {
		encrypted, err := svc.EncryptValue(ctx, input)
		require.NoError(t, err)

		assert.NotEmpty(t, encrypted.EncryptedData)
		assert.Len(t, encrypted.IV, 2*cryptoDomain.IVSize)
		assert.Len(t, encrypted.HMAC, 2*cryptoDomain.MACSize)
		_, err = base64.StdEncoding.DecodeString(encrypted.EncryptedData)
		assert.NoError(t, err)

		decrypted, err := svc.DecryptValue(ctx, encrypted)
		require.NoError(t, err)
		assert.Equal(t, input, decrypted)
	}
}

func TestCipherService_EmptyPlaintextNeverDecrypts(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCipherService(t)

	encrypted, err := svc.EncryptValue(ctx, "")
	require.NoError(t, err)
	assert.NotEmpty(t, encrypted.EncryptedData)

	decrypted, err := svc.DecryptValue(ctx, encrypted)
	assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	assert.Empty(t, decrypted)
}

func TestCipherService_FreshIVPerEncryption(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCipherService(t)

	seen := make(map[string]bool)
	for range 50 {
		encrypted, err := svc.EncryptValue(ctx, "same plaintext")
		require.NoError(t, err)

		assert.False(t, seen[encrypted.IV], "iv reused")
		seen[encrypted.IV] = true
	}
}

func TestCipherService_MACCoversEncodedCiphertextAndIV(t *testing.T) {
	ctx := context.Background()
	svc, fallback := newTestCipherService(t)

	encrypted, err := svc.EncryptValue(ctx, "Alex Morgan")
	require.NoError(t, err)

	macKeyHex, err := fallback.Get(ctx, cryptoDomain.FallbackHMACKeyName)
	require.NoError(t, err)
	macKey, err := hex.DecodeString(macKeyHex)
	require.NoError(t, err)

	expected := NewHMACSHA256().Sum(macKey, []byte(encrypted.EncryptedData+encrypted.IV))
	assert.Equal(t, hex.EncodeToString(expected), encrypted.HMAC)
}

// flipChar replaces the character at index i with a different character of the same alphabet.
func flipChar(s string, i int, alphabet string) string {
	b := []byte(s)
	for _, c := range []byte(alphabet) {
		if c != b[i] {
			b[i] = c
			break
		}
	}
	return string(b)
}

func TestCipherService_TamperDetection(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCipherService(t)

	original, err := svc.EncryptValue(ctx, "account 9876543210")
	require.NoError(t, err)

	const hexAlphabet = "0123456789abcdef"
	const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	tests := []struct {
		name   string
		tamper func(v cryptoDomain.EncryptedValue) cryptoDomain.EncryptedValue
	}{
		{
			name: "encryptedData first char",
			tamper: func(v cryptoDomain.EncryptedValue) cryptoDomain.EncryptedValue {
				v.EncryptedData = flipChar(v.EncryptedData, 0, base64Alphabet)
				return v
			},
		},
		{
			name: "encryptedData middle char",
			tamper: func(v cryptoDomain.EncryptedValue) cryptoDomain.EncryptedValue {
				v.EncryptedData = flipChar(v.EncryptedData, len(v.EncryptedData)/2, base64Alphabet)
				return v
			},
		},
		{
			name: "iv first char",
			tamper: func(v cryptoDomain.EncryptedValue) cryptoDomain.EncryptedValue {
				v.IV = flipChar(v.IV, 0, hexAlphabet)
				return v
			},
		},
		{
			name: "iv last char",
			tamper: func(v cryptoDomain.EncryptedValue) cryptoDomain.EncryptedValue {
				v.IV = flipChar(v.IV, len(v.IV)-1, hexAlphabet)
				return v
			},
		},
		{
			name: "hmac first char",
			tamper: func(v cryptoDomain.EncryptedValue) cryptoDomain.EncryptedValue {
				v.HMAC = flipChar(v.HMAC, 0, hexAlphabet)
				return v
			},
		},
		{
			name: "hmac last char",
			tamper: func(v cryptoDomain.EncryptedValue) cryptoDomain.EncryptedValue {
				v.HMAC = flipChar(v.HMAC, len(v.HMAC)-1, hexAlphabet)
				return v
			},
		},
		{
			name: "hmac truncated",
			tamper: func(v cryptoDomain.EncryptedValue) cryptoDomain.EncryptedValue {
				v.HMAC = v.HMAC[:len(v.HMAC)-2]
				return v
			},
		},
		{
			name: "empty value",
			tamper: func(v cryptoDomain.EncryptedValue) cryptoDomain.EncryptedValue {
				return cryptoDomain.EncryptedValue{}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.DecryptValue(ctx, tt.tamper(original))
			assert.ErrorIs(t, err, cryptoDomain.ErrIntegrityCheckFailed)
		})
	}

	t.Run("untampered still decrypts", func(t *testing.T) {
		plaintext, err := svc.DecryptValue(ctx, original)
		require.NoError(t, err)
		assert.Equal(t, "account 9876543210", plaintext)
	})
}

// recordingCipher wraps a BlockCipher and counts Decrypt calls.
type recordingCipher struct {
	BlockCipher
	decrypts int
}

func (c *recordingCipher) Decrypt(key, iv, ciphertext []byte) ([]byte, error) {
	c.decrypts++
	return c.BlockCipher.Decrypt(key, iv, ciphertext)
}

func TestCipherService_NoDecryptionAfterMACFailure(t *testing.T) {
	ctx := context.Background()
	keys := NewKeyManager(nil, newMemoryKeyStore(), rand.Reader, discardLogger())
	blockCipher := &recordingCipher{BlockCipher: NewAESCBC()}
	svc := NewCipherService(keys, blockCipher, NewHMACSHA256(), rand.Reader)

	encrypted, err := svc.EncryptValue(ctx, "value")
	require.NoError(t, err)
	encrypted.HMAC = strings.Repeat("0", 64)

	_, err = svc.DecryptValue(ctx, encrypted)
	assert.ErrorIs(t, err, cryptoDomain.ErrIntegrityCheckFailed)
	assert.Equal(t, 0, blockCipher.decrypts)
}

func TestCipherService_DecryptionFailedAfterValidMAC(t *testing.T) {
	ctx := context.Background()
	svc, fallback := newTestCipherService(t)

	_, err := svc.EncryptValue(ctx, "prime keys")
	require.NoError(t, err)

	macKeyHex, err := fallback.Get(ctx, cryptoDomain.FallbackHMACKeyName)
	require.NoError(t, err)
	macKey, err := hex.DecodeString(macKeyHex)
	require.NoError(t, err)

	signed := func(encryptedData, iv string) cryptoDomain.EncryptedValue {
		return cryptoDomain.EncryptedValue{
			EncryptedData: encryptedData,
			IV:            iv,
			HMAC:          hex.EncodeToString(NewHMACSHA256().Sum(macKey, []byte(encryptedData+iv))),
		}
	}

	validIV := strings.Repeat("00", cryptoDomain.IVSize)

	tests := []struct {
		name  string
		value cryptoDomain.EncryptedValue
	}{
		{name: "ciphertext not base64", value: signed("***", validIV)},
		{name: "iv not hex", value: signed(base64.StdEncoding.EncodeToString(make([]byte, 16)), "zz")},
		{name: "iv wrong size", value: signed(base64.StdEncoding.EncodeToString(make([]byte, 16)), "0011")},
		{name: "ciphertext not block aligned", value: signed(base64.StdEncoding.EncodeToString(make([]byte, 5)), validIV)},
		{name: "empty ciphertext", value: signed("", validIV)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.DecryptValue(ctx, tt.value)
			assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
		})
	}

	t.Run("invalid utf-8 plaintext", func(t *testing.T) {
		encKeyHex, err := fallback.Get(ctx, cryptoDomain.FallbackEncryptionKeyName)
		require.NoError(t, err)
		encKey, err := hex.DecodeString(encKeyHex)
		require.NoError(t, err)

		iv := bytes.Repeat([]byte{7}, cryptoDomain.IVSize)
		ciphertext, err := NewAESCBC().Encrypt(encKey, iv, []byte{0xff, 0xfe, 0xfd})
		require.NoError(t, err)

		value := signed(base64.StdEncoding.EncodeToString(ciphertext), hex.EncodeToString(iv))
		_, err = svc.DecryptValue(ctx, value)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})
}

func TestCipherService_KeysFromAnotherDevice(t *testing.T) {
	ctx := context.Background()
	svcA, _ := newTestCipherService(t)
	svcB, _ := newTestCipherService(t)

	encrypted, err := svcA.EncryptValue(ctx, "secret")
	require.NoError(t, err)

	_, err = svcB.DecryptValue(ctx, encrypted)
	assert.ErrorIs(t, err, cryptoDomain.ErrIntegrityCheckFailed)
}

func TestCipherService_KeyManagementFailure(t *testing.T) {
	ctx := context.Background()
	keys := &mocks.MockKeyManager{}
	keys.On("GetOrCreateKey", mock.Anything, cryptoDomain.ConfidentialityKey).
		Return("", cryptoDomain.ErrKeyManagement).
		Twice()
	svc := NewCipherService(keys, NewAESCBC(), NewHMACSHA256(), rand.Reader)

	_, err := svc.EncryptValue(ctx, "value")
	assert.ErrorIs(t, err, cryptoDomain.ErrKeyManagement)

	_, err = svc.DecryptValue(ctx, cryptoDomain.EncryptedValue{})
	assert.ErrorIs(t, err, cryptoDomain.ErrKeyManagement)
	keys.AssertExpectations(t)
}

func TestCipherService_IVGenerationFailure(t *testing.T) {
	ctx := context.Background()
	keys := NewKeyManager(nil, newMemoryKeyStore(), rand.Reader, discardLogger())
	svc := NewCipherService(keys, NewAESCBC(), NewHMACSHA256(), strings.NewReader(""))

	_, err := svc.EncryptValue(ctx, "value")
	assert.Error(t, err)
}

func TestCipherService_ReadinessAndStorageType(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCipherService(t)

	ready, err := svc.IsReady(ctx)
	require.NoError(t, err)
	assert.False(t, ready)

	_, err = svc.EncryptValue(ctx, "x")
	require.NoError(t, err)

	ready, err = svc.IsReady(ctx)
	require.NoError(t, err)
	assert.True(t, ready)
	assert.Equal(t, cryptoDomain.StorageFallback, svc.StorageType())

	require.NoError(t, svc.ClearKeys(ctx))
	ready, err = svc.IsReady(ctx)
	require.NoError(t, err)
	assert.False(t, ready)
}

func TestCipherService_ClearKeysInvalidatesCiphertext(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCipherService(t)

	encrypted, err := svc.EncryptValue(ctx, "before reset")
	require.NoError(t, err)

	require.NoError(t, svc.ClearKeys(ctx))

	_, err = svc.DecryptValue(ctx, encrypted)
	assert.ErrorIs(t, err, cryptoDomain.ErrIntegrityCheckFailed)
}

func TestCipherService_IsReadyPropagatesStoreFailure(t *testing.T) {
	ctx := context.Background()
	keys := &mocks.MockKeyManager{}
	keys.On("HasKey", mock.Anything, cryptoDomain.ConfidentialityKey).
		Return(false, errors.New("io")).
		Once()
	svc := NewCipherService(keys, NewAESCBC(), NewHMACSHA256(), rand.Reader)

	_, err := svc.IsReady(ctx)
	assert.Error(t, err)
}
