package commands

import (
	"context"
	"fmt"

	authUseCase "github.com/allisson/bankvault/internal/auth/usecase"
)

func pinFromInput(io IOTuple, pin string) (string, error) {
	if pin != "" {
		return pin, nil
	}
	pin, err := readLine(io, "PIN: ")
	if err != nil {
		return "", fmt.Errorf("failed to read PIN: %w", err)
	}
	return pin, nil
}

// RunPinSet stores a new device PIN. When pin is empty it is read from io.Reader.
func RunPinSet(ctx context.Context, pinUseCase authUseCase.PinUseCase, io IOTuple, pin string) error {
	pin, err := pinFromInput(io, pin)
	if err != nil {
		return err
	}
	if err := pinUseCase.SetPin(ctx, pin); err != nil {
		return err
	}
	_, err = fmt.Fprintln(io.Writer, "PIN set")
	return err
}

// RunPinVerify checks pin against the stored PIN. A mismatch, a lockout and a missing
// PIN are returned as errors.
func RunPinVerify(ctx context.Context, pinUseCase authUseCase.PinUseCase, io IOTuple, pin string) error {
	pin, err := pinFromInput(io, pin)
	if err != nil {
		return err
	}
	if err := pinUseCase.VerifyPin(ctx, pin); err != nil {
		return err
	}
	_, err = fmt.Fprintln(io.Writer, "PIN verified")
	return err
}

// RunPinClear removes the stored PIN and its lockout state.
func RunPinClear(ctx context.Context, pinUseCase authUseCase.PinUseCase, io IOTuple) error {
	if err := pinUseCase.ClearPin(ctx); err != nil {
		return err
	}
	_, err := fmt.Fprintln(io.Writer, "PIN cleared")
	return err
}
