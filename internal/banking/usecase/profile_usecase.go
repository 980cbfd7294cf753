package usecase

import (
	"context"
	"log/slog"

	bankingDomain "github.com/allisson/bankvault/internal/banking/domain"
	cryptoService "github.com/allisson/bankvault/internal/crypto/service"
)

type profileUseCase struct {
	records *recordStore[bankingDomain.Profile, bankingDomain.EncryptedProfile]
}

// Store validates and persists profile.
func (p *profileUseCase) Store(ctx context.Context, profile bankingDomain.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	return p.records.save(ctx, profile)
}

// Get returns the stored profile.
func (p *profileUseCase) Get(ctx context.Context) (bankingDomain.Profile, error) {
	return p.records.load(ctx)
}

// Update merges partial onto the stored profile, starting from an empty profile when
// none is stored, and returns the merged result.
func (p *profileUseCase) Update(ctx context.Context, partial bankingDomain.Profile) (bankingDomain.Profile, error) {
	if err := partial.Validate(); err != nil {
		return bankingDomain.Profile{}, err
	}
	return p.records.mutate(ctx, func(current bankingDomain.Profile, _ bool) (bankingDomain.Profile, error) {
		return current.Merge(partial), nil
	})
}

func (p *profileUseCase) Clear(ctx context.Context) error {
	return p.records.clear(ctx)
}

func (p *profileUseCase) Has(ctx context.Context) (bool, error) {
	return p.records.has(ctx)
}

// MaskedAccountNumber returns ErrProfileNotFound when no profile or no account number
// is stored.
func (p *profileUseCase) MaskedAccountNumber(ctx context.Context) (string, error) {
	profile, err := p.records.load(ctx)
	if err != nil {
		return "", err
	}
	if profile.AccountNumber == nil {
		return "", bankingDomain.ErrProfileNotFound
	}
	return cryptoService.FormatAccountNumber(*profile.AccountNumber), nil
}

// NewProfileUseCase creates a ProfileUseCase storing its container in store under
// ProfileStorageKey.
func NewProfileUseCase(
	store ContainerStore,
	cipher cryptoService.CipherService,
	opts Options,
	logger *slog.Logger,
) ProfileUseCase {
	return &profileUseCase{
		records: &recordStore[bankingDomain.Profile, bankingDomain.EncryptedProfile]{
			store:    store,
			key:      bankingDomain.ProfileStorageKey,
			notFound: bankingDomain.ErrProfileNotFound,
			encrypt:  cipher.EncryptProfile,
			decrypt:  cipher.DecryptProfile,
			opts:     opts.withDefaults(),
			logger:   logger,
		},
	}
}
