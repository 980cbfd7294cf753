package usecase

import (
	"context"
	"time"

	"github.com/allisson/bankvault/internal/metrics"
)

// pinUseCaseWithMetrics decorates PinUseCase with metrics instrumentation.
type pinUseCaseWithMetrics struct {
	next    PinUseCase
	metrics metrics.BusinessMetrics
}

// NewPinUseCaseWithMetrics wraps a PinUseCase with metrics recording.
func NewPinUseCaseWithMetrics(useCase PinUseCase, m metrics.BusinessMetrics) PinUseCase {
	return &pinUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (p *pinUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	p.metrics.RecordOperation(ctx, "auth", operation, status)
	p.metrics.RecordDuration(ctx, "auth", operation, time.Since(start), status)
}

// SetPin records metrics for PIN changes.
func (p *pinUseCaseWithMetrics) SetPin(ctx context.Context, pin string) error {
	start := time.Now()
	err := p.next.SetPin(ctx, pin)
	p.record(ctx, "pin_set", start, err)
	return err
}

// VerifyPin records metrics for PIN verification. Mismatches count as errors.
func (p *pinUseCaseWithMetrics) VerifyPin(ctx context.Context, pin string) error {
	start := time.Now()
	err := p.next.VerifyPin(ctx, pin)
	p.record(ctx, "pin_verify", start, err)
	return err
}

func (p *pinUseCaseWithMetrics) HasPin(ctx context.Context) (bool, error) {
	return p.next.HasPin(ctx)
}

// ClearPin records metrics for PIN removal.
func (p *pinUseCaseWithMetrics) ClearPin(ctx context.Context) error {
	start := time.Now()
	err := p.next.ClearPin(ctx)
	p.record(ctx, "pin_clear", start, err)
	return err
}
