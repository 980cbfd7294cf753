// Package mocks provides mock implementations of the banking use cases for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	bankingDomain "github.com/allisson/bankvault/internal/banking/domain"
	cryptoDomain "github.com/allisson/bankvault/internal/crypto/domain"
)

// MockProfileUseCase is a mock implementation of ProfileUseCase.
type MockProfileUseCase struct {
	mock.Mock
}

func (m *MockProfileUseCase) Store(ctx context.Context, profile bankingDomain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileUseCase) Get(ctx context.Context) (bankingDomain.Profile, error) {
	args := m.Called(ctx)
	return args.Get(0).(bankingDomain.Profile), args.Error(1)
}

func (m *MockProfileUseCase) Update(
	ctx context.Context,
	partial bankingDomain.Profile,
) (bankingDomain.Profile, error) {
	args := m.Called(ctx, partial)
	return args.Get(0).(bankingDomain.Profile), args.Error(1)
}

func (m *MockProfileUseCase) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProfileUseCase) Has(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileUseCase) MaskedAccountNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// MockTransactionUseCase is a mock implementation of TransactionUseCase.
type MockTransactionUseCase struct {
	mock.Mock
}

func (m *MockTransactionUseCase) Store(ctx context.Context, transactions []bankingDomain.Transaction) error {
	args := m.Called(ctx, transactions)
	return args.Error(0)
}

func (m *MockTransactionUseCase) List(ctx context.Context) ([]bankingDomain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bankingDomain.Transaction), args.Error(1)
}

func (m *MockTransactionUseCase) Add(
	ctx context.Context,
	transaction bankingDomain.Transaction,
) (bankingDomain.Transaction, error) {
	args := m.Called(ctx, transaction)
	return args.Get(0).(bankingDomain.Transaction), args.Error(1)
}

func (m *MockTransactionUseCase) Update(
	ctx context.Context,
	id string,
	update bankingDomain.TransactionUpdate,
) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockTransactionUseCase) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTransactionUseCase) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTransactionUseCase) Has(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

// MockLifecycleUseCase is a mock implementation of LifecycleUseCase.
type MockLifecycleUseCase struct {
	mock.Mock
}

func (m *MockLifecycleUseCase) InitializeWithDefaults(
	ctx context.Context,
	seed bankingDomain.Profile,
) (bool, error) {
	args := m.Called(ctx, seed)
	return args.Bool(0), args.Error(1)
}

func (m *MockLifecycleUseCase) InitializeWithDefaultTransactions(
	ctx context.Context,
	seed []bankingDomain.Transaction,
) (bool, error) {
	args := m.Called(ctx, seed)
	return args.Bool(0), args.Error(1)
}

func (m *MockLifecycleUseCase) SecurityReset(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLifecycleUseCase) StorageType() cryptoDomain.StorageType {
	args := m.Called()
	return args.Get(0).(cryptoDomain.StorageType)
}

func (m *MockLifecycleUseCase) IsEncryptionReady(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockLifecycleUseCase) Status(ctx context.Context) (*bankingDomain.Status, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bankingDomain.Status), args.Error(1)
}
