package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	bankingDomain "github.com/allisson/bankvault/internal/banking/domain"
	"github.com/allisson/bankvault/internal/banking/http/dto"
	"github.com/allisson/bankvault/internal/banking/seed"
	bankingUseCase "github.com/allisson/bankvault/internal/banking/usecase"
	cryptoService "github.com/allisson/bankvault/internal/crypto/service"
)

// RunProfileShow prints the cached profile, or the seed profile when nothing valid is
// cached. The account number is masked unless reveal is set.
func RunProfileShow(
	ctx context.Context,
	profileUseCase bankingUseCase.ProfileUseCase,
	seedData seed.Data,
	w io.Writer,
	reveal bool,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	source := bankingDomain.SourceCache
	profile, err := profileUseCase.Get(ctx)
	switch {
	case errors.Is(err, bankingDomain.ErrProfileNotFound):
		profile = seedData.Profile
		source = bankingDomain.SourceSeed
	case err != nil:
		return err
	}

	if !reveal && profile.AccountNumber != nil {
		masked := cryptoService.FormatAccountNumber(*profile.AccountNumber)
		profile.AccountNumber = &masked
	}

	return writeProfile(w, profile, source, format)
}

// RunProfileUpdate merges the present fields of partial onto the cached profile and
// prints the result.
func RunProfileUpdate(
	ctx context.Context,
	profileUseCase bankingUseCase.ProfileUseCase,
	partial bankingDomain.Profile,
	w io.Writer,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if partial.IsEmpty() {
		return errors.New("at least one of --user-name, --balance or --account-number is required")
	}
	if err := partial.Validate(); err != nil {
		return err
	}

	merged, err := profileUseCase.Update(ctx, partial)
	if err != nil {
		return err
	}
	return writeProfile(w, merged, bankingDomain.SourceCache, format)
}

func writeProfile(w io.Writer, profile bankingDomain.Profile, source bankingDomain.Source, format string) error {
	if format == FormatJSON {
		return writeJSON(w, dto.MapProfileToResponse(profile, source))
	}

	_, _ = fmt.Fprintf(w, "Source: %s\n", source)
	_, _ = fmt.Fprintf(w, "User name: %s\n", valueOrDash(profile.UserName))
	balance := "-"
	if profile.AccountBalance != nil {
		balance = strconv.FormatFloat(*profile.AccountBalance, 'f', 2, 64)
	}
	_, _ = fmt.Fprintf(w, "Balance: %s\n", balance)
	_, err := fmt.Fprintf(w, "Account number: %s\n", valueOrDash(profile.AccountNumber))
	return err
}

func valueOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
