package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bankingDomain "github.com/allisson/bankvault/internal/banking/domain"
	"github.com/allisson/bankvault/internal/banking/http/dto"
	"github.com/allisson/bankvault/internal/banking/seed"
	bankingMocks "github.com/allisson/bankvault/internal/banking/usecase/mocks"
	apperrors "github.com/allisson/bankvault/internal/errors"
)

func TestRunTransactionsList(t *testing.T) {
	ctx := context.Background()
	data := seed.Default()
	cached := []bankingDomain.Transaction{
		{ID: "a", Title: "Rent", Amount: -1200, Date: "Dec 1", Type: bankingDomain.Debit, Category: "Housing"},
		{ID: "b", Title: "Salary", Amount: 3000, Date: "Dec 2", Type: bankingDomain.Credit, Category: "Income"},
		{ID: "c", Title: "Books", Amount: -30, Date: "Dec 3", Type: bankingDomain.Debit, Category: "Education"},
	}

	t.Run("cached page as json", func(t *testing.T) {
		transactions := &bankingMocks.MockTransactionUseCase{}
		transactions.On("List", ctx).Return(cached, nil)

		var out bytes.Buffer
		err := RunTransactionsList(ctx, transactions, data, &out, 1, 1, FormatJSON)
		require.NoError(t, err)

		var response dto.ListTransactionsResponse
		require.NoError(t, json.Unmarshal(out.Bytes(), &response))
		require.Equal(t, 3, response.Total)
		require.Equal(t, bankingDomain.SourceCache, response.Source)
		require.Len(t, response.Data, 1)
		require.Equal(t, "b", response.Data[0].ID)
	})

	t.Run("seed fallback as text", func(t *testing.T) {
		transactions := &bankingMocks.MockTransactionUseCase{}
		transactions.On("List", ctx).Return(nil, bankingDomain.ErrTransactionsNotFound)

		var out bytes.Buffer
		err := RunTransactionsList(ctx, transactions, data, &out, 0, 50, FormatText)
		require.NoError(t, err)
		require.Contains(t, out.String(), "Starbucks Coffee")
		require.Contains(t, out.String(), "(source: seed)")
	})

	t.Run("offset past end", func(t *testing.T) {
		transactions := &bankingMocks.MockTransactionUseCase{}
		transactions.On("List", ctx).Return(cached, nil)

		var out bytes.Buffer
		err := RunTransactionsList(ctx, transactions, data, &out, 10, 5, FormatText)
		require.NoError(t, err)
		require.Contains(t, out.String(), "Showing 0 of 3 (source: cache)")
	})

	t.Run("invalid pagination", func(t *testing.T) {
		transactions := &bankingMocks.MockTransactionUseCase{}

		require.ErrorContains(t, RunTransactionsList(ctx, transactions, data, io.Discard, -1, 5, FormatText), "offset")
		require.ErrorContains(t, RunTransactionsList(ctx, transactions, data, io.Discard, 0, 0, FormatText), "limit")
		require.ErrorContains(t, RunTransactionsList(ctx, transactions, data, io.Discard, 0, 101, FormatText), "limit")
		transactions.AssertNotCalled(t, "List", mock.Anything)
	})
}

func TestRunTransactionAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		req := &dto.TransactionRequest{Title: "Lunch", Amount: floatPtr(-12.5), Type: "debit", Date: "Today"}
		stored := req.ToDomain()
		stored.ID = "generated"

		transactions := &bankingMocks.MockTransactionUseCase{}
		transactions.On("Add", ctx, req.ToDomain()).Return(stored, nil)

		var out bytes.Buffer
		err := RunTransactionAdd(ctx, transactions, req, &out, FormatText)
		require.NoError(t, err)
		require.Equal(t, "Added transaction generated\n", out.String())
		transactions.AssertExpectations(t)
	})

	t.Run("validation error", func(t *testing.T) {
		transactions := &bankingMocks.MockTransactionUseCase{}
		req := &dto.TransactionRequest{Title: "Lunch", Amount: floatPtr(1), Type: "refund"}

		err := RunTransactionAdd(ctx, transactions, req, io.Discard, FormatText)
		require.ErrorIs(t, err, apperrors.ErrInvalidInput)
		transactions.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})
}

func TestRunTransactionUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		req := &dto.TransactionUpdateRequest{Title: strPtr("Groceries")}
		transactions := &bankingMocks.MockTransactionUseCase{}
		transactions.On("Update", ctx, "1", req.ToDomain()).Return(nil)

		var out bytes.Buffer
		err := RunTransactionUpdate(ctx, transactions, "1", req, &out)
		require.NoError(t, err)
		require.Equal(t, "Updated transaction 1\n", out.String())
		transactions.AssertExpectations(t)
	})

	t.Run("missing id", func(t *testing.T) {
		err := RunTransactionUpdate(ctx, &bankingMocks.MockTransactionUseCase{}, "", &dto.TransactionUpdateRequest{}, io.Discard)
		require.ErrorContains(t, err, "id is required")
	})

	t.Run("invalid type", func(t *testing.T) {
		err := RunTransactionUpdate(
			ctx, &bankingMocks.MockTransactionUseCase{}, "1",
			&dto.TransactionUpdateRequest{Type: strPtr("refund")}, io.Discard,
		)
		require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestRunTransactionDelete(t *testing.T) {
	ctx := context.Background()

	transactions := &bankingMocks.MockTransactionUseCase{}
	transactions.On("Delete", ctx, "2").Return(nil)

	var out bytes.Buffer
	require.NoError(t, RunTransactionDelete(ctx, transactions, "2", &out))
	require.Equal(t, "Deleted transaction 2\n", out.String())
	transactions.AssertExpectations(t)

	require.ErrorContains(t, RunTransactionDelete(ctx, transactions, "", io.Discard), "id is required")
}
