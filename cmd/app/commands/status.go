package commands

import (
	"context"
	"fmt"
	"io"

	authUseCase "github.com/allisson/bankvault/internal/auth/usecase"
	bankingDomain "github.com/allisson/bankvault/internal/banking/domain"
	bankingUseCase "github.com/allisson/bankvault/internal/banking/usecase"
)

type statusOutput struct {
	bankingDomain.Status
	PinSet bool `json:"pin_set"`
}

// RunStatus prints which key store is active, whether the device keys are usable and
// which records are cached.
func RunStatus(
	ctx context.Context,
	lifecycleUseCase bankingUseCase.LifecycleUseCase,
	pinUseCase authUseCase.PinUseCase,
	w io.Writer,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	status, err := lifecycleUseCase.Status(ctx)
	if err != nil {
		return err
	}
	pinSet, err := pinUseCase.HasPin(ctx)
	if err != nil {
		return err
	}

	out := statusOutput{Status: *status, PinSet: pinSet}
	if format == FormatJSON {
		return writeJSON(w, out)
	}

	_, _ = fmt.Fprintf(w, "Storage type: %s\n", out.StorageType)
	_, _ = fmt.Fprintf(w, "Encryption ready: %t\n", out.EncryptionReady)
	_, _ = fmt.Fprintf(w, "Profile cached: %t\n", out.HasProfile)
	_, _ = fmt.Fprintf(w, "Transactions cached: %t\n", out.HasTransactions)
	_, err = fmt.Fprintf(w, "PIN set: %t\n", out.PinSet)
	return err
}
