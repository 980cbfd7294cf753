// Package mocks provides mock implementations of the auth use cases for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockPinUseCase is a mock implementation of PinUseCase.
type MockPinUseCase struct {
	mock.Mock
}

func (m *MockPinUseCase) SetPin(ctx context.Context, pin string) error {
	args := m.Called(ctx, pin)
	return args.Error(0)
}

func (m *MockPinUseCase) VerifyPin(ctx context.Context, pin string) error {
	args := m.Called(ctx, pin)
	return args.Error(0)
}

func (m *MockPinUseCase) HasPin(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockPinUseCase) ClearPin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
