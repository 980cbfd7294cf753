package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	bankingDomain "github.com/allisson/bankvault/internal/banking/domain"
	"github.com/allisson/bankvault/internal/banking/http/dto"
	"github.com/allisson/bankvault/internal/banking/seed"
	bankingUseCase "github.com/allisson/bankvault/internal/banking/usecase"
	"github.com/allisson/bankvault/internal/httputil"
	customValidation "github.com/allisson/bankvault/internal/validation"
)

// RunTransactionsList prints a page of the cached transactions, or of the seed
// transactions when nothing valid is cached.
func RunTransactionsList(
	ctx context.Context,
	transactionUseCase bankingUseCase.TransactionUseCase,
	seedData seed.Data,
	w io.Writer,
	offset, limit int,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if offset < 0 {
		return errors.New("offset must be non-negative")
	}
	if limit < 1 || limit > httputil.MaxLimit {
		return fmt.Errorf("limit must be between 1 and %d", httputil.MaxLimit)
	}

	source := bankingDomain.SourceCache
	transactions, err := transactionUseCase.List(ctx)
	switch {
	case errors.Is(err, bankingDomain.ErrTransactionsNotFound):
		transactions = seedData.Transactions
		source = bankingDomain.SourceSeed
	case err != nil:
		return err
	}

	page := httputil.Paginate(transactions, offset, limit)
	response := dto.MapTransactionsToListResponse(page, len(transactions), source)
	if format == FormatJSON {
		return writeJSON(w, response)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tTITLE\tAMOUNT\tTYPE\tDATE\tCATEGORY")
	for _, t := range response.Data {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\t%s\t%s\n", t.ID, t.Title, t.Amount, t.Type, t.Date, t.Category)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Showing %d of %d (source: %s)\n", len(response.Data), response.Total, source)
	return err
}

// RunTransactionAdd validates req, appends it to the cached list and prints the stored
// transaction.
func RunTransactionAdd(
	ctx context.Context,
	transactionUseCase bankingUseCase.TransactionUseCase,
	req *dto.TransactionRequest,
	w io.Writer,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return customValidation.WrapValidationError(err)
	}

	added, err := transactionUseCase.Add(ctx, req.ToDomain())
	if err != nil {
		return err
	}

	if format == FormatJSON {
		return writeJSON(w, dto.MapTransactionToResponse(added))
	}
	_, err = fmt.Fprintf(w, "Added transaction %s\n", added.ID)
	return err
}

// RunTransactionUpdate applies req to the first cached transaction with id. An unknown
// id leaves the list unchanged.
func RunTransactionUpdate(
	ctx context.Context,
	transactionUseCase bankingUseCase.TransactionUseCase,
	id string,
	req *dto.TransactionUpdateRequest,
	w io.Writer,
) error {
	if id == "" {
		return errors.New("transaction id is required")
	}
	if err := req.Validate(); err != nil {
		return customValidation.WrapValidationError(err)
	}

	if err := transactionUseCase.Update(ctx, id, req.ToDomain()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Updated transaction %s\n", id)
	return err
}

// RunTransactionDelete removes the first cached transaction with id.
func RunTransactionDelete(
	ctx context.Context,
	transactionUseCase bankingUseCase.TransactionUseCase,
	id string,
	w io.Writer,
) error {
	if id == "" {
		return errors.New("transaction id is required")
	}
	if err := transactionUseCase.Delete(ctx, id); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Deleted transaction %s\n", id)
	return err
}
