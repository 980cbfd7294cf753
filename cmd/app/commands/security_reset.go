package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	bankingUseCase "github.com/allisson/bankvault/internal/banking/usecase"
)

// ErrResetAborted is returned when the operator declines the confirmation prompt.
var ErrResetAborted = errors.New("security reset aborted")

// RunSecurityReset deletes both cached containers and both device keys. Unless yes is
// set the operator must type "reset" to confirm.
func RunSecurityReset(
	ctx context.Context,
	lifecycleUseCase bankingUseCase.LifecycleUseCase,
	logger *slog.Logger,
	io IOTuple,
	yes bool,
) error {
	if !yes {
		_, _ = fmt.Fprintln(io.Writer, "This permanently deletes the cached banking data and the device keys.")
		answer, err := readLine(io, `Type "reset" to continue: `)
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !strings.EqualFold(answer, "reset") {
			return ErrResetAborted
		}
	}

	if err := lifecycleUseCase.SecurityReset(ctx); err != nil {
		return err
	}

	logger.Warn("security reset completed")
	_, err := fmt.Fprintln(io.Writer, "Security reset completed")
	return err
}
