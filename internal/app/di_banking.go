package app

import (
	"fmt"

	bankingHTTP "github.com/allisson/bankvault/internal/banking/http"
	"github.com/allisson/bankvault/internal/banking/seed"
	bankingUseCase "github.com/allisson/bankvault/internal/banking/usecase"
	"github.com/allisson/bankvault/internal/kvstore"
)

// SeedData returns the default profile and transactions, read from the configured
// seed file when one is set.
func (c *Container) SeedData() (seed.Data, error) {
	var err error
	c.seedDataInit.Do(func() {
		c.seedData, err = seed.Load(c.config.SeedFile)
		if err != nil {
			c.initErrors["seedData"] = err
		}
	})
	if err != nil {
		return seed.Data{}, err
	}
	if storedErr, exists := c.initErrors["seedData"]; exists {
		return seed.Data{}, storedErr
	}
	return c.seedData, nil
}

// ProfileUseCase returns the profile use case.
func (c *Container) ProfileUseCase() (bankingUseCase.ProfileUseCase, error) {
	var err error
	c.profileUseCaseInit.Do(func() {
		c.profileUseCase, err = c.initProfileUseCase()
		if err != nil {
			c.initErrors["profileUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["profileUseCase"]; exists {
		return nil, storedErr
	}
	return c.profileUseCase, nil
}

// TransactionUseCase returns the transaction use case.
func (c *Container) TransactionUseCase() (bankingUseCase.TransactionUseCase, error) {
	var err error
	c.transactionUseCaseInit.Do(func() {
		c.transactionUseCase, err = c.initTransactionUseCase()
		if err != nil {
			c.initErrors["transactionUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["transactionUseCase"]; exists {
		return nil, storedErr
	}
	return c.transactionUseCase, nil
}

// LifecycleUseCase returns the lifecycle use case.
func (c *Container) LifecycleUseCase() (bankingUseCase.LifecycleUseCase, error) {
	var err error
	c.lifecycleUseCaseInit.Do(func() {
		c.lifecycleUseCase, err = c.initLifecycleUseCase()
		if err != nil {
			c.initErrors["lifecycleUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["lifecycleUseCase"]; exists {
		return nil, storedErr
	}
	return c.lifecycleUseCase, nil
}

// ProfileHandler returns a new profile HTTP handler.
func (c *Container) ProfileHandler() (*bankingHTTP.ProfileHandler, error) {
	useCase, err := c.ProfileUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile use case for profile handler: %w", err)
	}
	seedData, err := c.SeedData()
	if err != nil {
		return nil, fmt.Errorf("failed to get seed data for profile handler: %w", err)
	}
	return bankingHTTP.NewProfileHandler(useCase, seedData, c.Logger()), nil
}

// TransactionHandler returns a new transaction HTTP handler.
func (c *Container) TransactionHandler() (*bankingHTTP.TransactionHandler, error) {
	useCase, err := c.TransactionUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction use case for transaction handler: %w", err)
	}
	seedData, err := c.SeedData()
	if err != nil {
		return nil, fmt.Errorf("failed to get seed data for transaction handler: %w", err)
	}
	return bankingHTTP.NewTransactionHandler(useCase, seedData, c.Logger()), nil
}

// LifecycleHandler returns a new lifecycle HTTP handler.
func (c *Container) LifecycleHandler() (*bankingHTTP.LifecycleHandler, error) {
	useCase, err := c.LifecycleUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get lifecycle use case for lifecycle handler: %w", err)
	}
	seedData, err := c.SeedData()
	if err != nil {
		return nil, fmt.Errorf("failed to get seed data for lifecycle handler: %w", err)
	}
	return bankingHTTP.NewLifecycleHandler(useCase, seedData, c.Logger()), nil
}

// cacheOptions builds the container options from configuration. Discards are counted
// when metrics are enabled.
func (c *Container) cacheOptions() (bankingUseCase.Options, error) {
	opts := bankingUseCase.DefaultOptions()
	if c.config.CacheTTL > 0 {
		opts.TTL = c.config.CacheTTL
	}
	if c.config.SchemaVersion != "" {
		opts.SchemaVersion = c.config.SchemaVersion
	}
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return opts, err
		}
		opts.OnDiscard = businessMetrics.RecordCacheDiscard
	}
	return opts, nil
}

// initProfileUseCase creates the profile use case with all its dependencies.
func (c *Container) initProfileUseCase() (bankingUseCase.ProfileUseCase, error) {
	store, err := c.Store(kvstore.NamespaceBanking)
	if err != nil {
		return nil, fmt.Errorf("failed to get storage for profile use case: %w", err)
	}
	cipher, err := c.CipherService()
	if err != nil {
		return nil, fmt.Errorf("failed to get cipher service for profile use case: %w", err)
	}

	opts, err := c.cacheOptions()
	if err != nil {
		return nil, fmt.Errorf("failed to get cache options for profile use case: %w", err)
	}

	baseUseCase := bankingUseCase.NewProfileUseCase(store, cipher, opts, c.Logger())

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for profile use case: %w", err)
		}
		return bankingUseCase.NewProfileUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initTransactionUseCase creates the transaction use case with all its dependencies.
func (c *Container) initTransactionUseCase() (bankingUseCase.TransactionUseCase, error) {
	store, err := c.Store(kvstore.NamespaceBanking)
	if err != nil {
		return nil, fmt.Errorf("failed to get storage for transaction use case: %w", err)
	}
	cipher, err := c.CipherService()
	if err != nil {
		return nil, fmt.Errorf("failed to get cipher service for transaction use case: %w", err)
	}

	opts, err := c.cacheOptions()
	if err != nil {
		return nil, fmt.Errorf("failed to get cache options for transaction use case: %w", err)
	}

	baseUseCase := bankingUseCase.NewTransactionUseCase(store, cipher, opts, c.Logger())

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for transaction use case: %w", err)
		}
		return bankingUseCase.NewTransactionUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initLifecycleUseCase creates the lifecycle use case with all its dependencies.
func (c *Container) initLifecycleUseCase() (bankingUseCase.LifecycleUseCase, error) {
	profiles, err := c.ProfileUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile use case for lifecycle use case: %w", err)
	}
	transactions, err := c.TransactionUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction use case for lifecycle use case: %w", err)
	}
	cipher, err := c.CipherService()
	if err != nil {
		return nil, fmt.Errorf("failed to get cipher service for lifecycle use case: %w", err)
	}

	baseUseCase := bankingUseCase.NewLifecycleUseCase(profiles, transactions, cipher, c.Logger())

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for lifecycle use case: %w", err)
		}
		return bankingUseCase.NewLifecycleUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
