package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/bankvault/internal/banking/http/dto"
	"github.com/allisson/bankvault/internal/banking/seed"
	bankingUseCase "github.com/allisson/bankvault/internal/banking/usecase"
)

// RunBootstrap stores the seed profile and seed transactions for every record that has
// no valid container yet. Valid cached records are left untouched.
func RunBootstrap(
	ctx context.Context,
	lifecycleUseCase bankingUseCase.LifecycleUseCase,
	seedData seed.Data,
	logger *slog.Logger,
	w io.Writer,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	var out dto.BootstrapResponse
	var err error

	out.ProfileSeeded, err = lifecycleUseCase.InitializeWithDefaults(ctx, seedData.Profile)
	if err != nil {
		return fmt.Errorf("failed to seed profile: %w", err)
	}

	out.TransactionsSeeded, err = lifecycleUseCase.InitializeWithDefaultTransactions(ctx, seedData.Transactions)
	if err != nil {
		return fmt.Errorf("failed to seed transactions: %w", err)
	}

	logger.Info("bootstrap completed",
		slog.Bool("profile_seeded", out.ProfileSeeded),
		slog.Bool("transactions_seeded", out.TransactionsSeeded),
	)

	if format == FormatJSON {
		return writeJSON(w, out)
	}
	_, err = fmt.Fprintf(w, "Profile: %s\nTransactions: %s\n",
		seededLabel(out.ProfileSeeded), seededLabel(out.TransactionsSeeded))
	return err
}

func seededLabel(seeded bool) string {
	if seeded {
		return "seeded"
	}
	return "already cached"
}
