package usecase

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	bankingDomain "github.com/allisson/bankvault/internal/banking/domain"
	cryptoDomain "github.com/allisson/bankvault/internal/crypto/domain"
	cryptoService "github.com/allisson/bankvault/internal/crypto/service"
)

type lifecycleUseCase struct {
	profiles     ProfileUseCase
	transactions TransactionUseCase
	cipher       cryptoService.CipherService
	logger       *slog.Logger
}

func (l *lifecycleUseCase) InitializeWithDefaults(ctx context.Context, seed bankingDomain.Profile) (bool, error) {
	exists, err := l.profiles.Has(ctx)
	if err != nil || exists {
		return false, err
	}
	if err := l.profiles.Store(ctx, seed); err != nil {
		return false, err
	}
	l.logger.Info("seeded banking profile")
	return true, nil
}

func (l *lifecycleUseCase) InitializeWithDefaultTransactions(
	ctx context.Context,
	seed []bankingDomain.Transaction,
) (bool, error) {
	exists, err := l.transactions.Has(ctx)
	if err != nil || exists {
		return false, err
	}
	if err := l.transactions.Store(ctx, seed); err != nil {
		return false, err
	}
	l.logger.Info("seeded transactions", slog.Int("count", len(seed)))
	return true, nil
}

// SecurityReset removes both containers and both device keys concurrently. Every step
// runs even when another fails; the first failure is returned.
func (l *lifecycleUseCase) SecurityReset(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return l.profiles.Clear(ctx) })
	g.Go(func() error { return l.transactions.Clear(ctx) })
	g.Go(func() error { return l.cipher.ClearKeys(ctx) })
	if err := g.Wait(); err != nil {
		return err
	}

	l.logger.Warn("security reset completed")
	return nil
}

func (l *lifecycleUseCase) StorageType() cryptoDomain.StorageType {
	return l.cipher.StorageType()
}

func (l *lifecycleUseCase) IsEncryptionReady(ctx context.Context) (bool, error) {
	return l.cipher.IsReady(ctx)
}

func (l *lifecycleUseCase) Status(ctx context.Context) (*bankingDomain.Status, error) {
	ready, err := l.cipher.IsReady(ctx)
	if err != nil {
		return nil, err
	}
	hasProfile, err := l.profiles.Has(ctx)
	if err != nil {
		return nil, err
	}
	hasTransactions, err := l.transactions.Has(ctx)
	if err != nil {
		return nil, err
	}
	return &bankingDomain.Status{
		StorageType:     l.cipher.StorageType(),
		EncryptionReady: ready,
		HasProfile:      hasProfile,
		HasTransactions: hasTransactions,
	}, nil
}

// NewLifecycleUseCase creates a LifecycleUseCase over the given record use cases.
func NewLifecycleUseCase(
	profiles ProfileUseCase,
	transactions TransactionUseCase,
	cipher cryptoService.CipherService,
	logger *slog.Logger,
) LifecycleUseCase {
	return &lifecycleUseCase{
		profiles:     profiles,
		transactions: transactions,
		cipher:       cipher,
		logger:       logger,
	}
}
