package app

import (
	"context"
	"crypto/rand"
	"fmt"

	"github.com/allisson/bankvault/internal/crypto/keystore"
	cryptoService "github.com/allisson/bankvault/internal/crypto/service"
	"github.com/allisson/bankvault/internal/kvstore"
)

// KMSService returns the KMS service.
func (c *Container) KMSService() cryptoService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = c.initKMSService()
	})
	return c.kmsService
}

// PrimaryKeyStore returns the KMS-sealed key store, or nil when it is not configured
// or failed its availability probe. The probe runs once per process.
func (c *Container) PrimaryKeyStore() (*keystore.SealedKeyStore, error) {
	var err error
	c.primaryKeyStoreInit.Do(func() {
		c.primaryKeyStore, err = c.initPrimaryKeyStore()
		if err != nil {
			c.initErrors["primaryKeyStore"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["primaryKeyStore"]; exists {
		return nil, storedErr
	}
	return c.primaryKeyStore, nil
}

// KeyManager returns the device key manager.
func (c *Container) KeyManager() (cryptoService.KeyManager, error) {
	var err error
	c.keyManagerInit.Do(func() {
		c.keyManager, err = c.initKeyManager()
		if err != nil {
			c.initErrors["keyManager"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["keyManager"]; exists {
		return nil, storedErr
	}
	return c.keyManager, nil
}

// CipherService returns the cipher service.
func (c *Container) CipherService() (cryptoService.CipherService, error) {
	var err error
	c.cipherServiceInit.Do(func() {
		c.cipherService, err = c.initCipherService()
		if err != nil {
			c.initErrors["cipherService"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["cipherService"]; exists {
		return nil, storedErr
	}
	return c.cipherService, nil
}

// initKMSService creates the KMS service for sealing primary keys.
func (c *Container) initKMSService() cryptoService.KMSService {
	return cryptoService.NewKMSService(rand.Reader)
}

// initPrimaryKeyStore probes the primary store. An unavailable primary store is not an
// error; only a failure to open its backing storage is.
func (c *Container) initPrimaryKeyStore() (*keystore.SealedKeyStore, error) {
	store, err := c.Store(kvstore.NamespacePrimaryKeys)
	if err != nil {
		return nil, fmt.Errorf("failed to get storage for primary key store: %w", err)
	}
	return keystore.SelectPrimary(
		context.Background(),
		c.KMSService(),
		c.config.KMSKeyURI,
		store,
		c.Logger(),
	), nil
}

// initKeyManager creates the key manager over the primary and fallback stores.
func (c *Container) initKeyManager() (cryptoService.KeyManager, error) {
	fallback, err := c.Store(kvstore.NamespaceFallbackKeys)
	if err != nil {
		return nil, fmt.Errorf("failed to get storage for fallback key store: %w", err)
	}

	sealed, err := c.PrimaryKeyStore()
	if err != nil {
		return nil, err
	}

	// A nil *SealedKeyStore must not become a non-nil interface.
	var primary cryptoService.KeyStore
	if sealed != nil {
		primary = sealed
	}

	return cryptoService.NewKeyManager(primary, fallback, rand.Reader, c.Logger()), nil
}

// initCipherService creates the AES-256-CBC + HMAC-SHA256 cipher service.
func (c *Container) initCipherService() (cryptoService.CipherService, error) {
	keyManager, err := c.KeyManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get key manager for cipher service: %w", err)
	}
	return cryptoService.NewCipherService(
		keyManager,
		cryptoService.NewAESCBC(),
		cryptoService.NewHMACSHA256(),
		rand.Reader,
	), nil
}
