package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"gocloud.dev/secrets"

	cryptoDomain "github.com/allisson/bankvault/internal/crypto/domain"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// LocalKeyScheme is the URI scheme of the local keeper used for development and tests.
const LocalKeyScheme = "base64key://"

// KMSService opens the keeper that seals device keys in the primary key store.
type KMSService interface {
	// OpenKeeper opens a keeper for the KMS key identified by keyURI.
	// Supports: gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://
	OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error)

	// GenerateLocalKeyURI returns a base64key:// URI holding a fresh 32-byte key.
	GenerateLocalKeyURI() (string, error)
}

type kmsService struct {
	random io.Reader
}

// NewKMSService creates a KMS service. random supplies local key material and is
// normally crypto/rand.Reader.
func NewKMSService(random io.Reader) KMSService {
	return &kmsService{random: random}
}

// OpenKeeper returns a *secrets.Keeper, which satisfies KMSKeeper.
func (k *kmsService) OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error) {
	if strings.TrimSpace(keyURI) == "" {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", cryptoDomain.ErrKeyStoreUnavailable)
	}
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	return keeper, nil
}

func (k *kmsService) GenerateLocalKeyURI() (string, error) {
	key := make([]byte, cryptoDomain.KeySize)
	defer cryptoDomain.Zero(key)
	if _, err := io.ReadFull(k.random, key); err != nil {
		return "", fmt.Errorf("failed to generate local KMS key: %w", err)
	}
	return LocalKeyScheme + base64.URLEncoding.EncodeToString(key), nil
}
