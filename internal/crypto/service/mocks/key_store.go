// Package mocks provides mock implementations of the crypto service interfaces for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	cryptoDomain "github.com/allisson/bankvault/internal/crypto/domain"
)

// MockKeyStore is a mock implementation of KeyStore for testing.
type MockKeyStore struct {
	mock.Mock
}

// Get mocks the Get method of KeyStore.
func (m *MockKeyStore) Get(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

// Set mocks the Set method of KeyStore.
func (m *MockKeyStore) Set(ctx context.Context, name, value string) error {
	args := m.Called(ctx, name, value)
	return args.Error(0)
}

// Delete mocks the Delete method of KeyStore.
func (m *MockKeyStore) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

// MockKeyManager is a mock implementation of KeyManager for testing.
type MockKeyManager struct {
	mock.Mock
}

// GetOrCreateKey mocks the GetOrCreateKey method of KeyManager.
func (m *MockKeyManager) GetOrCreateKey(ctx context.Context, kind cryptoDomain.KeyKind) (string, error) {
	args := m.Called(ctx, kind)
	return args.String(0), args.Error(1)
}

// HasKey mocks the HasKey method of KeyManager.
func (m *MockKeyManager) HasKey(ctx context.Context, kind cryptoDomain.KeyKind) (bool, error) {
	args := m.Called(ctx, kind)
	return args.Bool(0), args.Error(1)
}

// ClearKeys mocks the ClearKeys method of KeyManager.
func (m *MockKeyManager) ClearKeys(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// StorageType mocks the StorageType method of KeyManager.
func (m *MockKeyManager) StorageType() cryptoDomain.StorageType {
	args := m.Called()
	return args.Get(0).(cryptoDomain.StorageType)
}
