package usecase

import (
	"context"
	"time"

	bankingDomain "github.com/allisson/bankvault/internal/banking/domain"
	cryptoDomain "github.com/allisson/bankvault/internal/crypto/domain"
	"github.com/allisson/bankvault/internal/metrics"
)

const metricsDomain = "banking"

func observe(ctx context.Context, m metrics.BusinessMetrics, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.RecordOperation(ctx, metricsDomain, operation, status)
	m.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// profileUseCaseWithMetrics decorates ProfileUseCase with metrics instrumentation.
type profileUseCaseWithMetrics struct {
	next    ProfileUseCase
	metrics metrics.BusinessMetrics
}

// NewProfileUseCaseWithMetrics wraps a ProfileUseCase with metrics recording.
func NewProfileUseCaseWithMetrics(useCase ProfileUseCase, m metrics.BusinessMetrics) ProfileUseCase {
	return &profileUseCaseWithMetrics{next: useCase, metrics: m}
}

func (p *profileUseCaseWithMetrics) Store(ctx context.Context, profile bankingDomain.Profile) error {
	start := time.Now()
	err := p.next.Store(ctx, profile)
	observe(ctx, p.metrics, "profile_store", start, err)
	return err
}

func (p *profileUseCaseWithMetrics) Get(ctx context.Context) (bankingDomain.Profile, error) {
	start := time.Now()
	profile, err := p.next.Get(ctx)
	observe(ctx, p.metrics, "profile_get", start, err)
	return profile, err
}

func (p *profileUseCaseWithMetrics) Update(
	ctx context.Context,
	partial bankingDomain.Profile,
) (bankingDomain.Profile, error) {
	start := time.Now()
	profile, err := p.next.Update(ctx, partial)
	observe(ctx, p.metrics, "profile_update", start, err)
	return profile, err
}

func (p *profileUseCaseWithMetrics) Clear(ctx context.Context) error {
	start := time.Now()
	err := p.next.Clear(ctx)
	observe(ctx, p.metrics, "profile_clear", start, err)
	return err
}

func (p *profileUseCaseWithMetrics) Has(ctx context.Context) (bool, error) {
	start := time.Now()
	ok, err := p.next.Has(ctx)
	observe(ctx, p.metrics, "profile_has", start, err)
	return ok, err
}

func (p *profileUseCaseWithMetrics) MaskedAccountNumber(ctx context.Context) (string, error) {
	start := time.Now()
	masked, err := p.next.MaskedAccountNumber(ctx)
	observe(ctx, p.metrics, "profile_masked_account", start, err)
	return masked, err
}

// transactionUseCaseWithMetrics decorates TransactionUseCase with metrics instrumentation.
type transactionUseCaseWithMetrics struct {
	next    TransactionUseCase
	metrics metrics.BusinessMetrics
}

// NewTransactionUseCaseWithMetrics wraps a TransactionUseCase with metrics recording.
func NewTransactionUseCaseWithMetrics(useCase TransactionUseCase, m metrics.BusinessMetrics) TransactionUseCase {
	return &transactionUseCaseWithMetrics{next: useCase, metrics: m}
}

func (t *transactionUseCaseWithMetrics) Store(ctx context.Context, transactions []bankingDomain.Transaction) error {
	start := time.Now()
	err := t.next.Store(ctx, transactions)
	observe(ctx, t.metrics, "transactions_store", start, err)
	return err
}

func (t *transactionUseCaseWithMetrics) List(ctx context.Context) ([]bankingDomain.Transaction, error) {
	start := time.Now()
	transactions, err := t.next.List(ctx)
	observe(ctx, t.metrics, "transactions_list", start, err)
	return transactions, err
}

func (t *transactionUseCaseWithMetrics) Add(
	ctx context.Context,
	transaction bankingDomain.Transaction,
) (bankingDomain.Transaction, error) {
	start := time.Now()
	added, err := t.next.Add(ctx, transaction)
	observe(ctx, t.metrics, "transaction_add", start, err)
	return added, err
}

func (t *transactionUseCaseWithMetrics) Update(
	ctx context.Context,
	id string,
	update bankingDomain.TransactionUpdate,
) error {
	start := time.Now()
	err := t.next.Update(ctx, id, update)
	observe(ctx, t.metrics, "transaction_update", start, err)
	return err
}

func (t *transactionUseCaseWithMetrics) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := t.next.Delete(ctx, id)
	observe(ctx, t.metrics, "transaction_delete", start, err)
	return err
}

func (t *transactionUseCaseWithMetrics) Clear(ctx context.Context) error {
	start := time.Now()
	err := t.next.Clear(ctx)
	observe(ctx, t.metrics, "transactions_clear", start, err)
	return err
}

func (t *transactionUseCaseWithMetrics) Has(ctx context.Context) (bool, error) {
	start := time.Now()
	ok, err := t.next.Has(ctx)
	observe(ctx, t.metrics, "transactions_has", start, err)
	return ok, err
}

// lifecycleUseCaseWithMetrics decorates LifecycleUseCase with metrics instrumentation.
// StorageType is not recorded.
type lifecycleUseCaseWithMetrics struct {
	next    LifecycleUseCase
	metrics metrics.BusinessMetrics
}

// NewLifecycleUseCaseWithMetrics wraps a LifecycleUseCase with metrics recording.
func NewLifecycleUseCaseWithMetrics(useCase LifecycleUseCase, m metrics.BusinessMetrics) LifecycleUseCase {
	return &lifecycleUseCaseWithMetrics{next: useCase, metrics: m}
}

func (l *lifecycleUseCaseWithMetrics) InitializeWithDefaults(
	ctx context.Context,
	seed bankingDomain.Profile,
) (bool, error) {
	start := time.Now()
	seeded, err := l.next.InitializeWithDefaults(ctx, seed)
	observe(ctx, l.metrics, "initialize_profile", start, err)
	return seeded, err
}

func (l *lifecycleUseCaseWithMetrics) InitializeWithDefaultTransactions(
	ctx context.Context,
	seed []bankingDomain.Transaction,
) (bool, error) {
	start := time.Now()
	seeded, err := l.next.InitializeWithDefaultTransactions(ctx, seed)
	observe(ctx, l.metrics, "initialize_transactions", start, err)
	return seeded, err
}

func (l *lifecycleUseCaseWithMetrics) SecurityReset(ctx context.Context) error {
	start := time.Now()
	err := l.next.SecurityReset(ctx)
	observe(ctx, l.metrics, "security_reset", start, err)
	return err
}

func (l *lifecycleUseCaseWithMetrics) StorageType() cryptoDomain.StorageType {
	return l.next.StorageType()
}

func (l *lifecycleUseCaseWithMetrics) IsEncryptionReady(ctx context.Context) (bool, error) {
	start := time.Now()
	ready, err := l.next.IsEncryptionReady(ctx)
	observe(ctx, l.metrics, "encryption_ready", start, err)
	return ready, err
}

func (l *lifecycleUseCaseWithMetrics) Status(ctx context.Context) (*bankingDomain.Status, error) {
	start := time.Now()
	status, err := l.next.Status(ctx)
	observe(ctx, l.metrics, "status", start, err)
	return status, err
}
