package service

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"unicode/utf8"

	cryptoDomain "github.com/allisson/bankvault/internal/crypto/domain"
)

// CipherServiceImpl implements CipherService with encrypt-then-MAC: every value is
// encrypted under the confidentiality key with a fresh IV and the encoded ciphertext and
// IV are then authenticated under the integrity key.
type CipherServiceImpl struct {
	keys   KeyManager
	cipher BlockCipher
	mac    MAC
	random io.Reader
}

// NewCipherService creates a CipherServiceImpl. random supplies IVs and is normally
// crypto/rand.Reader.
func NewCipherService(keys KeyManager, blockCipher BlockCipher, mac MAC, random io.Reader) *CipherServiceImpl {
	return &CipherServiceImpl{
		keys:   keys,
		cipher: blockCipher,
		mac:    mac,
		random: random,
	}
}

// loadKeys returns the raw confidentiality and integrity keys. Callers must zero both.
func (s *CipherServiceImpl) loadKeys(ctx context.Context) (encKey, macKey []byte, err error) {
	encKey, err = s.loadKey(ctx, cryptoDomain.ConfidentialityKey)
	if err != nil {
		return nil, nil, err
	}
	macKey, err = s.loadKey(ctx, cryptoDomain.IntegrityKey)
	if err != nil {
		cryptoDomain.Zero(encKey)
		return nil, nil, err
	}
	return encKey, macKey, nil
}

func (s *CipherServiceImpl) loadKey(ctx context.Context, kind cryptoDomain.KeyKind) ([]byte, error) {
	hexKey, err := s.keys.GetOrCreateKey(ctx, kind)
	if err != nil {
		return nil, err
	}
	raw, err := cryptoDomain.DecodeKey(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrKeyManagement, err)
	}
	return raw, nil
}

func (s *CipherServiceImpl) sign(macKey []byte, encryptedData, iv string) string {
	return hex.EncodeToString(s.mac.Sum(macKey, []byte(encryptedData+iv)))
}

// deviceKeys holds the raw key pair for the duration of one operation.
type deviceKeys struct {
	enc []byte
	mac []byte
}

func (k deviceKeys) zero() {
	cryptoDomain.Zero(k.enc)
	cryptoDomain.Zero(k.mac)
}

func (s *CipherServiceImpl) deviceKeys(ctx context.Context) (deviceKeys, error) {
	encKey, macKey, err := s.loadKeys(ctx)
	if err != nil {
		return deviceKeys{}, err
	}
	return deviceKeys{enc: encKey, mac: macKey}, nil
}

// EncryptValue encrypts plaintext under a fresh random IV and authenticates the result.
func (s *CipherServiceImpl) EncryptValue(ctx context.Context, plaintext string) (cryptoDomain.EncryptedValue, error) {
	keys, err := s.deviceKeys(ctx)
	if err != nil {
		return cryptoDomain.EncryptedValue{}, err
	}
	defer keys.zero()
	return s.encrypt(keys, plaintext)
}

func (s *CipherServiceImpl) encrypt(keys deviceKeys, plaintext string) (cryptoDomain.EncryptedValue, error) {
	iv := make([]byte, cryptoDomain.IVSize)
	if _, err := io.ReadFull(s.random, iv); err != nil {
		return cryptoDomain.EncryptedValue{}, fmt.Errorf("failed to generate iv: %w", err)
	}

	ciphertext, err := s.cipher.Encrypt(keys.enc, iv, []byte(plaintext))
	if err != nil {
		return cryptoDomain.EncryptedValue{}, fmt.Errorf("failed to encrypt value: %w", err)
	}

	encryptedData := base64.StdEncoding.EncodeToString(ciphertext)
	ivHex := hex.EncodeToString(iv)

	return cryptoDomain.EncryptedValue{
		EncryptedData: encryptedData,
		IV:            ivHex,
		HMAC:          s.sign(keys.mac, encryptedData, ivHex),
	}, nil
}

// DecryptValue verifies the MAC in constant time and only then decrypts. A MAC mismatch
// returns ErrIntegrityCheckFailed; any failure after verification, including an empty
// plaintext, returns ErrDecryptionFailed.
func (s *CipherServiceImpl) DecryptValue(ctx context.Context, value cryptoDomain.EncryptedValue) (string, error) {
	keys, err := s.deviceKeys(ctx)
	if err != nil {
		return "", err
	}
	defer keys.zero()
	return s.decrypt(keys, value)
}

func (s *CipherServiceImpl) decrypt(keys deviceKeys, value cryptoDomain.EncryptedValue) (string, error) {
	expected := s.sign(keys.mac, value.EncryptedData, value.IV)
	if !ConstantTimeCompare(expected, value.HMAC) {
		return "", cryptoDomain.ErrIntegrityCheckFailed
	}

	ciphertext, err := base64.StdEncoding.DecodeString(value.EncryptedData)
	if err != nil {
		return "", cryptoDomain.ErrDecryptionFailed
	}
	iv, err := hex.DecodeString(value.IV)
	if err != nil || len(iv) != cryptoDomain.IVSize {
		return "", cryptoDomain.ErrDecryptionFailed
	}

	plaintext, err := s.cipher.Decrypt(keys.enc, iv, ciphertext)
	if err != nil || len(plaintext) == 0 {
		return "", cryptoDomain.ErrDecryptionFailed
	}
	if !utf8.Valid(plaintext) {
		return "", cryptoDomain.ErrDecryptionFailed
	}
	return string(plaintext), nil
}

// ClearKeys deletes the device keys from every store.
func (s *CipherServiceImpl) ClearKeys(ctx context.Context) error {
	return s.keys.ClearKeys(ctx)
}

// IsReady reports whether a confidentiality key exists in either store.
func (s *CipherServiceImpl) IsReady(ctx context.Context) (bool, error) {
	ready, err := s.keys.HasKey(ctx, cryptoDomain.ConfidentialityKey)
	if err != nil {
		return false, err
	}
	return ready, nil
}

// StorageType reports which store holds newly created keys.
func (s *CipherServiceImpl) StorageType() cryptoDomain.StorageType {
	return s.keys.StorageType()
}
