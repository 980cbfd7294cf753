package commands

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/allisson/bankvault/internal/banking/seed"
	bankingMocks "github.com/allisson/bankvault/internal/banking/usecase/mocks"
)

func TestRunBootstrap(t *testing.T) {
	ctx := context.Background()
	data := seed.Default()

	t.Run("seeds both records", func(t *testing.T) {
		lifecycle := &bankingMocks.MockLifecycleUseCase{}
		lifecycle.On("InitializeWithDefaults", ctx, data.Profile).Return(true, nil)
		lifecycle.On("InitializeWithDefaultTransactions", ctx, data.Transactions).Return(true, nil)

		var out bytes.Buffer
		err := RunBootstrap(ctx, lifecycle, data, discardLogger(), &out, FormatText)
		require.NoError(t, err)
		require.Equal(t, "Profile: seeded\nTransactions: seeded\n", out.String())
		lifecycle.AssertExpectations(t)
	})

	t.Run("keeps cached records", func(t *testing.T) {
		lifecycle := &bankingMocks.MockLifecycleUseCase{}
		lifecycle.On("InitializeWithDefaults", ctx, data.Profile).Return(false, nil)
		lifecycle.On("InitializeWithDefaultTransactions", ctx, data.Transactions).Return(true, nil)

		var out bytes.Buffer
		err := RunBootstrap(ctx, lifecycle, data, discardLogger(), &out, FormatJSON)
		require.NoError(t, err)
		require.JSONEq(t, `{"profile_seeded":false,"transactions_seeded":true}`, out.String())
	})

	t.Run("profile error", func(t *testing.T) {
		lifecycle := &bankingMocks.MockLifecycleUseCase{}
		lifecycle.On("InitializeWithDefaults", ctx, data.Profile).Return(false, errors.New("no keys"))

		err := RunBootstrap(ctx, lifecycle, data, discardLogger(), io.Discard, FormatText)
		require.ErrorContains(t, err, "failed to seed profile")
		lifecycle.AssertNotCalled(t, "InitializeWithDefaultTransactions")
	})
}
