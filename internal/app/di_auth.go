package app

import (
	"fmt"

	authHTTP "github.com/allisson/bankvault/internal/auth/http"
	authService "github.com/allisson/bankvault/internal/auth/service"
	authUseCase "github.com/allisson/bankvault/internal/auth/usecase"
	"github.com/allisson/bankvault/internal/kvstore"
)

// PinHasher returns the PIN hasher.
func (c *Container) PinHasher() authService.PinHasher {
	c.pinHasherInit.Do(func() {
		c.pinHasher = authService.NewPinHasher()
	})
	return c.pinHasher
}

// PinUseCase returns the PIN use case.
func (c *Container) PinUseCase() (authUseCase.PinUseCase, error) {
	var err error
	c.pinUseCaseInit.Do(func() {
		c.pinUseCase, err = c.initPinUseCase()
		if err != nil {
			c.initErrors["pinUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["pinUseCase"]; exists {
		return nil, storedErr
	}
	return c.pinUseCase, nil
}

// PinHandler returns a new PIN HTTP handler.
func (c *Container) PinHandler() (*authHTTP.PinHandler, error) {
	useCase, err := c.PinUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get pin use case for pin handler: %w", err)
	}
	return authHTTP.NewPinHandler(useCase, c.Logger()), nil
}

// pinStore returns the store holding the PIN hash: the sealed primary store when it is
// available, otherwise the plain auth namespace.
func (c *Container) pinStore() (authUseCase.PinStore, error) {
	sealed, err := c.PrimaryKeyStore()
	if err != nil {
		return nil, err
	}
	if sealed != nil {
		return sealed, nil
	}
	return c.Store(kvstore.NamespaceAuth)
}

// initPinUseCase creates the PIN use case with all its dependencies.
func (c *Container) initPinUseCase() (authUseCase.PinUseCase, error) {
	store, err := c.pinStore()
	if err != nil {
		return nil, fmt.Errorf("failed to get storage for pin use case: %w", err)
	}
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for pin use case: %w", err)
	}

	baseUseCase := authUseCase.NewPinUseCase(
		store,
		txManager,
		c.PinHasher(),
		authUseCase.Options{
			MaxAttempts:     c.config.LockoutMaxAttempts,
			LockoutDuration: c.config.LockoutDuration,
		},
		c.Logger(),
	)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for pin use case: %w", err)
		}
		return authUseCase.NewPinUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
