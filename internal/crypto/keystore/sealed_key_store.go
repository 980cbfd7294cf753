// Package keystore provides the primary device key store: key material sealed by a KMS
// keeper before it reaches local storage.
package keystore

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	cryptoDomain "github.com/allisson/bankvault/internal/crypto/domain"
	cryptoService "github.com/allisson/bankvault/internal/crypto/service"
	apperrors "github.com/allisson/bankvault/internal/errors"
	"github.com/allisson/bankvault/internal/kvstore"
)

// probeName is written nowhere; reading it only checks the backing store answers.
const probeName = "test_availability"

// SealedKeyStore implements service.KeyStore. Values are sealed with the keeper and the
// base64 ciphertext is persisted in the backing store.
type SealedKeyStore struct {
	keeper cryptoDomain.KMSKeeper
	store  kvstore.Store
}

// NewSealedKeyStore creates a SealedKeyStore over keeper and store.
func NewSealedKeyStore(keeper cryptoDomain.KMSKeeper, store kvstore.Store) *SealedKeyStore {
	return &SealedKeyStore{keeper: keeper, store: store}
}

func (s *SealedKeyStore) Get(ctx context.Context, name string) (string, error) {
	sealed, err := s.store.Get(ctx, name)
	if err != nil {
		return "", err
	}
	ciphertext, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("sealed value %s is not base64: %w", name, err)
	}
	plaintext, err := s.keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return "", fmt.Errorf("failed to unseal %s: %w", name, err)
	}
	return string(plaintext), nil
}

func (s *SealedKeyStore) Set(ctx context.Context, name, value string) error {
	ciphertext, err := s.keeper.Encrypt(ctx, []byte(value))
	if err != nil {
		return fmt.Errorf("failed to seal %s: %w", name, err)
	}
	return s.store.Set(ctx, name, base64.StdEncoding.EncodeToString(ciphertext))
}

func (s *SealedKeyStore) Delete(ctx context.Context, name string) error {
	return s.store.Delete(ctx, name)
}

// Close releases the keeper.
func (s *SealedKeyStore) Close() error {
	return s.keeper.Close()
}

// Probe checks that the keeper can seal and unseal and that the backing store answers.
func (s *SealedKeyStore) Probe(ctx context.Context) error {
	sealed, err := s.keeper.Encrypt(ctx, []byte(probeName))
	if err != nil {
		return fmt.Errorf("%w: seal: %v", cryptoDomain.ErrKeyStoreUnavailable, err)
	}
	unsealed, err := s.keeper.Decrypt(ctx, sealed)
	if err != nil {
		return fmt.Errorf("%w: unseal: %v", cryptoDomain.ErrKeyStoreUnavailable, err)
	}
	if string(unsealed) != probeName {
		return fmt.Errorf("%w: keeper round trip mismatch", cryptoDomain.ErrKeyStoreUnavailable)
	}
	if _, err := s.store.Get(ctx, probeName); err != nil && !apperrors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("%w: backing store: %v", cryptoDomain.ErrKeyStoreUnavailable, err)
	}
	return nil
}

// SelectPrimary opens the keeper for keyURI, probes the resulting store once and
// returns it. When any step fails the problem is logged and nil is returned, so the
// key manager runs on the fallback store for the rest of the process.
func SelectPrimary(
	ctx context.Context,
	kmsService cryptoService.KMSService,
	keyURI string,
	store kvstore.Store,
	logger *slog.Logger,
) *SealedKeyStore {
	if keyURI == "" {
		logger.Warn("primary key store disabled: KMS_KEY_URI is empty, using fallback storage")
		return nil
	}

	keeper, err := kmsService.OpenKeeper(ctx, keyURI)
	if err != nil {
		logger.Warn("primary key store unavailable, using fallback storage", slog.Any("error", err))
		return nil
	}

	primary := NewSealedKeyStore(keeper, store)
	if err := primary.Probe(ctx); err != nil {
		logger.Warn("primary key store unavailable, using fallback storage", slog.Any("error", err))
		if closeErr := keeper.Close(); closeErr != nil {
			logger.Error("failed to close KMS keeper", slog.Any("error", closeErr))
		}
		return nil
	}

	logger.Info("primary key store available")
	return primary
}
