package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/singleflight"

	cryptoDomain "github.com/allisson/bankvault/internal/crypto/domain"
	"github.com/allisson/bankvault/internal/errors"
)

// KeyManagerService implements KeyManager over a primary and a fallback KeyStore.
//
// Lookups try the primary store first (under the primary names) and then the fallback
// store (under the fallback names). New keys are written to the primary store when one
// is configured, otherwise to the fallback store. Concurrent first requests for the same
// kind share a single generation inside the process.
type KeyManagerService struct {
	primary  KeyStore
	fallback KeyStore
	random   io.Reader
	group    singleflight.Group
	logger   *slog.Logger
}

// NewKeyManager creates a KeyManagerService. primary may be nil when the primary store
// failed its availability probe; fallback is required. random supplies key material
// and is normally crypto/rand.Reader.
func NewKeyManager(primary, fallback KeyStore, random io.Reader, logger *slog.Logger) *KeyManagerService {
	return &KeyManagerService{
		primary:  primary,
		fallback: fallback,
		random:   random,
		logger:   logger,
	}
}

// GetOrCreateKey returns the hex-encoded key of the given kind.
func (k *KeyManagerService) GetOrCreateKey(ctx context.Context, kind cryptoDomain.KeyKind) (string, error) {
	if !kind.Valid() {
		return "", cryptoDomain.ErrUnsupportedKeyKind
	}

	v, err, _ := k.group.Do(string(kind), func() (interface{}, error) {
		return k.getOrCreate(ctx, kind)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (k *KeyManagerService) getOrCreate(ctx context.Context, kind cryptoDomain.KeyKind) (string, error) {
	key, found, err := k.lookup(ctx, kind)
	if err != nil {
		return "", err
	}
	if found {
		return key, nil
	}

	raw := make([]byte, cryptoDomain.KeySize)
	defer cryptoDomain.Zero(raw)
	if _, err := io.ReadFull(k.random, raw); err != nil {
		return "", fmt.Errorf("%w: failed to generate %s key: %v", cryptoDomain.ErrKeyManagement, kind, err)
	}
	key, err = cryptoDomain.EncodeKey(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", cryptoDomain.ErrKeyManagement, err)
	}

	store, name := k.fallback, kind.FallbackName()
	if k.primary != nil {
		store, name = k.primary, kind.PrimaryName()
	}
	if err := store.Set(ctx, name, key); err != nil {
		return "", fmt.Errorf("%w: failed to persist %s key: %v", cryptoDomain.ErrKeyManagement, kind, err)
	}

	k.logger.Info("generated device key",
		slog.String("kind", string(kind)),
		slog.String("storage", string(k.StorageType())),
	)
	return key, nil
}

// lookup reads the key from the primary store and then the fallback store.
func (k *KeyManagerService) lookup(ctx context.Context, kind cryptoDomain.KeyKind) (string, bool, error) {
	if k.primary != nil {
		key, found, err := readKey(ctx, k.primary, kind.PrimaryName())
		if err != nil || found {
			return key, found, err
		}
	}
	return readKey(ctx, k.fallback, kind.FallbackName())
}

func readKey(ctx context.Context, store KeyStore, name string) (string, bool, error) {
	key, err := store.Get(ctx, name)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: failed to read %s: %v", cryptoDomain.ErrKeyManagement, name, err)
	}

	raw, err := cryptoDomain.DecodeKey(key)
	if err != nil {
		return "", false, fmt.Errorf("%w: stored key %s is malformed: %v", cryptoDomain.ErrKeyManagement, name, err)
	}
	cryptoDomain.Zero(raw)
	return key, true, nil
}

// HasKey reports whether a key of the given kind exists in either store.
func (k *KeyManagerService) HasKey(ctx context.Context, kind cryptoDomain.KeyKind) (bool, error) {
	if !kind.Valid() {
		return false, cryptoDomain.ErrUnsupportedKeyKind
	}
	stores := []struct {
		store KeyStore
		name  string
	}{
		{k.primary, kind.PrimaryName()},
		{k.fallback, kind.FallbackName()},
	}
	for _, s := range stores {
		if s.store == nil {
			continue
		}
		_, err := s.store.Get(ctx, s.name)
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, errors.ErrNotFound) {
			return false, fmt.Errorf("%w: failed to read %s: %v", cryptoDomain.ErrKeyManagement, s.name, err)
		}
	}
	return false, nil
}

// ClearKeys deletes both keys from both stores. Every deletion is attempted; failures
// are joined into the returned error.
func (k *KeyManagerService) ClearKeys(ctx context.Context) error {
	var errs []error
	for _, kind := range []cryptoDomain.KeyKind{cryptoDomain.ConfidentialityKey, cryptoDomain.IntegrityKey} {
		if k.primary != nil {
			if err := k.primary.Delete(ctx, kind.PrimaryName()); err != nil {
				errs = append(errs, fmt.Errorf("delete %s: %w", kind.PrimaryName(), err))
			}
		}
		if err := k.fallback.Delete(ctx, kind.FallbackName()); err != nil {
			errs = append(errs, fmt.Errorf("delete %s: %w", kind.FallbackName(), err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", cryptoDomain.ErrKeyManagement, errors.Join(errs...))
	}

	k.logger.Info("device keys cleared")
	return nil
}

// StorageType reports which store new keys are written to.
func (k *KeyManagerService) StorageType() cryptoDomain.StorageType {
	if k.primary != nil {
		return cryptoDomain.StoragePrimary
	}
	return cryptoDomain.StorageFallback
}
