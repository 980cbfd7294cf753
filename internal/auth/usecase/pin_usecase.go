package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	authDomain "github.com/allisson/bankvault/internal/auth/domain"
	authService "github.com/allisson/bankvault/internal/auth/service"
	"github.com/allisson/bankvault/internal/database"
	apperrors "github.com/allisson/bankvault/internal/errors"
)

// Options control the PIN lockout.
type Options struct {
	// MaxAttempts consecutive failures lock verification. Zero disables the lockout.
	MaxAttempts     int
	LockoutDuration time.Duration
	Now             func() time.Time
}

type pinUseCase struct {
	mu        sync.Mutex
	store     PinStore
	txManager database.TxManager
	hasher    authService.PinHasher
	opts      Options
	logger    *slog.Logger
}

func (p *pinUseCase) SetPin(ctx context.Context, pin string) error {
	if err := authDomain.ValidatePin(pin); err != nil {
		return err
	}

	hash, err := p.hasher.Hash(pin)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := p.store.Set(ctx, authDomain.PinHashKey, hash); err != nil {
			return err
		}
		return p.store.Delete(ctx, authDomain.PinAttemptsKey)
	})
	if err != nil {
		return err
	}

	p.logger.Info("pin set")
	return nil
}

func (p *pinUseCase) VerifyPin(ctx context.Context, pin string) error {
	if err := authDomain.ValidatePin(pin); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.opts.Now()

	attempts, err := p.loadAttempts(ctx)
	if err != nil {
		return err
	}
	if attempts.IsLocked(now) {
		return authDomain.ErrPinLocked
	}

	hash, err := p.store.Get(ctx, authDomain.PinHashKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return authDomain.ErrPinNotSet
		}
		return err
	}

	if p.hasher.Compare(pin, hash) {
		if attempts.IsZero() {
			return nil
		}
		return p.store.Delete(ctx, authDomain.PinAttemptsKey)
	}

	attempts = attempts.RecordFailure(now, p.opts.MaxAttempts, p.opts.LockoutDuration)
	if err := p.saveAttempts(ctx, attempts); err != nil {
		return err
	}

	if attempts.IsLocked(now) {
		p.logger.Warn("pin locked after failed attempts",
			slog.Int("failed_attempts", attempts.Failed),
			slog.Time("locked_until", *attempts.LockedUntil),
		)
		return authDomain.ErrPinLocked
	}
	return authDomain.ErrPinMismatch
}

func (p *pinUseCase) HasPin(ctx context.Context) (bool, error) {
	_, err := p.store.Get(ctx, authDomain.PinHashKey)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return false, nil
	}
	return false, err
}

func (p *pinUseCase) ClearPin(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := p.store.Delete(ctx, authDomain.PinHashKey); err != nil {
			return err
		}
		return p.store.Delete(ctx, authDomain.PinAttemptsKey)
	})
}

// loadAttempts treats an absent or unreadable record as no failures.
func (p *pinUseCase) loadAttempts(ctx context.Context) (authDomain.Attempts, error) {
	raw, err := p.store.Get(ctx, authDomain.PinAttemptsKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return authDomain.Attempts{}, nil
		}
		return authDomain.Attempts{}, err
	}

	var attempts authDomain.Attempts
	if err := json.Unmarshal([]byte(raw), &attempts); err != nil {
		p.logger.Warn("discarding unreadable pin attempts", slog.Any("error", err))
		return authDomain.Attempts{}, nil
	}
	return attempts, nil
}

func (p *pinUseCase) saveAttempts(ctx context.Context, attempts authDomain.Attempts) error {
	raw, err := json.Marshal(attempts)
	if err != nil {
		return fmt.Errorf("failed to encode pin attempts: %w", err)
	}
	return p.store.Set(ctx, authDomain.PinAttemptsKey, string(raw))
}

// NewPinUseCase creates a PinUseCase. txManager groups the writes that must land
// together on SQL-backed stores.
func NewPinUseCase(
	store PinStore,
	txManager database.TxManager,
	hasher authService.PinHasher,
	opts Options,
	logger *slog.Logger,
) PinUseCase {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &pinUseCase{
		store:     store,
		txManager: txManager,
		hasher:    hasher,
		opts:      opts,
		logger:    logger,
	}
}
