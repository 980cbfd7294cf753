package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	bankingDomain "github.com/allisson/bankvault/internal/banking/domain"
	cryptoService "github.com/allisson/bankvault/internal/crypto/service"
)

type transactionUseCase struct {
	records *recordStore[[]bankingDomain.Transaction, []bankingDomain.EncryptedTransaction]
}

func validateTransactions(transactions []bankingDomain.Transaction) error {
	for i, t := range transactions {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
	}
	return nil
}

// Store validates and persists transactions, replacing any stored list.
func (t *transactionUseCase) Store(ctx context.Context, transactions []bankingDomain.Transaction) error {
	if err := validateTransactions(transactions); err != nil {
		return err
	}
	if transactions == nil {
		transactions = []bankingDomain.Transaction{}
	}
	return t.records.save(ctx, transactions)
}

func (t *transactionUseCase) List(ctx context.Context) ([]bankingDomain.Transaction, error) {
	return t.records.load(ctx)
}

// Add appends transaction to the stored list, or starts a new list when none is stored.
func (t *transactionUseCase) Add(
	ctx context.Context,
	transaction bankingDomain.Transaction,
) (bankingDomain.Transaction, error) {
	if transaction.ID == "" {
		transaction.ID = uuid.Must(uuid.NewV7()).String()
	}
	if err := transaction.Validate(); err != nil {
		return bankingDomain.Transaction{}, err
	}

	_, err := t.records.mutate(
		ctx,
		func(current []bankingDomain.Transaction, _ bool) ([]bankingDomain.Transaction, error) {
			return append(slices.Clone(current), transaction), nil
		},
	)
	if err != nil {
		return bankingDomain.Transaction{}, err
	}
	return transaction, nil
}

// Update applies update to the first transaction whose id matches. An unmatched id
// leaves the records unchanged and re-stores the list. Without a stored list nothing
// is written.
func (t *transactionUseCase) Update(ctx context.Context, id string, update bankingDomain.TransactionUpdate) error {
	if err := update.Validate(); err != nil {
		return err
	}

	_, err := t.records.mutate(
		ctx,
		func(current []bankingDomain.Transaction, found bool) ([]bankingDomain.Transaction, error) {
			if !found {
				return nil, errUnchanged
			}
			next := slices.Clone(current)
			i := indexOf(next, id)
			if i < 0 {
				return next, nil
			}
			next[i] = next[i].Apply(update)
			return next, nil
		},
	)
	return err
}

// Delete removes the first transaction whose id matches. Without a stored list
// nothing is written.
func (t *transactionUseCase) Delete(ctx context.Context, id string) error {
	_, err := t.records.mutate(
		ctx,
		func(current []bankingDomain.Transaction, found bool) ([]bankingDomain.Transaction, error) {
			if !found {
				return nil, errUnchanged
			}
			i := indexOf(current, id)
			if i < 0 {
				return slices.Clone(current), nil
			}
			return slices.Delete(slices.Clone(current), i, i+1), nil
		},
	)
	return err
}

func (t *transactionUseCase) Clear(ctx context.Context) error {
	return t.records.clear(ctx)
}

func (t *transactionUseCase) Has(ctx context.Context) (bool, error) {
	return t.records.has(ctx)
}

func indexOf(transactions []bankingDomain.Transaction, id string) int {
	return slices.IndexFunc(transactions, func(tr bankingDomain.Transaction) bool {
		return tr.ID == id
	})
}

// NewTransactionUseCase creates a TransactionUseCase storing its container in store
// under TransactionsStorageKey.
func NewTransactionUseCase(
	store ContainerStore,
	cipher cryptoService.CipherService,
	opts Options,
	logger *slog.Logger,
) TransactionUseCase {
	return &transactionUseCase{
		records: &recordStore[[]bankingDomain.Transaction, []bankingDomain.EncryptedTransaction]{
			store:    store,
			key:      bankingDomain.TransactionsStorageKey,
			notFound: bankingDomain.ErrTransactionsNotFound,
			encrypt:  cipher.EncryptTransactions,
			decrypt:  cipher.DecryptTransactions,
			opts:     opts.withDefaults(),
			logger:   logger,
		},
	}
}
