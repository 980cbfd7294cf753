package service

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	bankingDomain "github.com/allisson/bankvault/internal/banking/domain"
	cryptoDomain "github.com/allisson/bankvault/internal/crypto/domain"
)

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, cryptoDomain.ErrDecryptionFailed
	}
	return v, nil
}

// EncryptProfile encrypts each present profile field independently. An empty string
// is stored as an absent field.
func (s *CipherServiceImpl) EncryptProfile(
	ctx context.Context,
	profile bankingDomain.Profile,
) (bankingDomain.EncryptedProfile, error) {
	keys, err := s.deviceKeys(ctx)
	if err != nil {
		return bankingDomain.EncryptedProfile{}, err
	}
	defer keys.zero()

	var out bankingDomain.EncryptedProfile
	fields := []struct {
		value *string
		dst   **cryptoDomain.EncryptedValue
	}{
		{profile.UserName, &out.UserName},
		{profile.AccountNumber, &out.AccountNumber},
	}
	if profile.AccountBalance != nil {
		balance := formatAmount(*profile.AccountBalance)
		fields = append(fields, struct {
			value *string
			dst   **cryptoDomain.EncryptedValue
		}{&balance, &out.AccountBalance})
	}

	for _, f := range fields {
		if f.value == nil || *f.value == "" {
			continue
		}
		ev, err := s.encrypt(keys, *f.value)
		if err != nil {
			return bankingDomain.EncryptedProfile{}, err
		}
		*f.dst = &ev
	}
	return out, nil
}

// DecryptProfile decrypts each present profile field. Any field failure fails the
// whole profile.
func (s *CipherServiceImpl) DecryptProfile(
	ctx context.Context,
	profile bankingDomain.EncryptedProfile,
) (bankingDomain.Profile, error) {
	keys, err := s.deviceKeys(ctx)
	if err != nil {
		return bankingDomain.Profile{}, err
	}
	defer keys.zero()

	var out bankingDomain.Profile
	if profile.UserName != nil {
		v, err := s.decrypt(keys, *profile.UserName)
		if err != nil {
			return bankingDomain.Profile{}, err
		}
		out.UserName = &v
	}
	if profile.AccountNumber != nil {
		v, err := s.decrypt(keys, *profile.AccountNumber)
		if err != nil {
			return bankingDomain.Profile{}, err
		}
		out.AccountNumber = &v
	}
	if profile.AccountBalance != nil {
		v, err := s.decrypt(keys, *profile.AccountBalance)
		if err != nil {
			return bankingDomain.Profile{}, err
		}
		balance, err := parseAmount(v)
		if err != nil {
			return bankingDomain.Profile{}, err
		}
		out.AccountBalance = &balance
	}
	return out, nil
}

// EncryptTransaction encrypts every transaction field except the identifier.
func (s *CipherServiceImpl) EncryptTransaction(
	ctx context.Context,
	transaction bankingDomain.Transaction,
) (bankingDomain.EncryptedTransaction, error) {
	keys, err := s.deviceKeys(ctx)
	if err != nil {
		return bankingDomain.EncryptedTransaction{}, err
	}
	defer keys.zero()
	return s.encryptTransaction(keys, transaction)
}

func (s *CipherServiceImpl) encryptTransaction(
	keys deviceKeys,
	transaction bankingDomain.Transaction,
) (bankingDomain.EncryptedTransaction, error) {
	out := bankingDomain.EncryptedTransaction{ID: transaction.ID}

	var err error
	if out.Amount, err = s.encrypt(keys, formatAmount(transaction.Amount)); err != nil {
		return bankingDomain.EncryptedTransaction{}, err
	}
	if out.Type, err = s.encrypt(keys, string(transaction.Type)); err != nil {
		return bankingDomain.EncryptedTransaction{}, err
	}

	texts := []struct {
		value string
		dst   **cryptoDomain.EncryptedValue
	}{
		{transaction.Title, &out.Title},
		{transaction.Subtitle, &out.Subtitle},
		{transaction.Date, &out.Date},
		{transaction.Category, &out.Category},
	}
	for _, f := range texts {
		if f.value == "" {
			continue
		}
		ev, err := s.encrypt(keys, f.value)
		if err != nil {
			return bankingDomain.EncryptedTransaction{}, err
		}
		*f.dst = &ev
	}
	return out, nil
}

// DecryptTransaction decrypts every transaction field; omitted text fields decode as
// empty strings. A non-numeric amount or an unknown type returns ErrDecryptionFailed.
func (s *CipherServiceImpl) DecryptTransaction(
	ctx context.Context,
	transaction bankingDomain.EncryptedTransaction,
) (bankingDomain.Transaction, error) {
	keys, err := s.deviceKeys(ctx)
	if err != nil {
		return bankingDomain.Transaction{}, err
	}
	defer keys.zero()
	return s.decryptTransaction(keys, transaction)
}

func (s *CipherServiceImpl) decryptTransaction(
	keys deviceKeys,
	transaction bankingDomain.EncryptedTransaction,
) (bankingDomain.Transaction, error) {
	out := bankingDomain.Transaction{ID: transaction.ID}

	texts := []struct {
		value *cryptoDomain.EncryptedValue
		dst   *string
	}{
		{transaction.Title, &out.Title},
		{transaction.Subtitle, &out.Subtitle},
		{transaction.Date, &out.Date},
		{transaction.Category, &out.Category},
	}
	for _, f := range texts {
		if f.value == nil {
			continue
		}
		v, err := s.decrypt(keys, *f.value)
		if err != nil {
			return bankingDomain.Transaction{}, err
		}
		*f.dst = v
	}

	amount, err := s.decrypt(keys, transaction.Amount)
	if err != nil {
		return bankingDomain.Transaction{}, err
	}
	txType, err := s.decrypt(keys, transaction.Type)
	if err != nil {
		return bankingDomain.Transaction{}, err
	}

	parsedAmount, err := parseAmount(amount)
	if err != nil {
		return bankingDomain.Transaction{}, err
	}
	parsedType, err := bankingDomain.ParseTransactionType(txType)
	if err != nil {
		return bankingDomain.Transaction{}, cryptoDomain.ErrDecryptionFailed
	}
	out.Amount = parsedAmount
	out.Type = parsedType
	return out, nil
}

// EncryptTransactions encrypts a list concurrently, preserving order. The first
// failure fails the whole list.
func (s *CipherServiceImpl) EncryptTransactions(
	ctx context.Context,
	transactions []bankingDomain.Transaction,
) ([]bankingDomain.EncryptedTransaction, error) {
	keys, err := s.deviceKeys(ctx)
	if err != nil {
		return nil, err
	}
	defer keys.zero()

	out := make([]bankingDomain.EncryptedTransaction, len(transactions))
	g, _ := errgroup.WithContext(ctx)
	for i, tx := range transactions {
		g.Go(func() error {
			encrypted, err := s.encryptTransaction(keys, tx)
			if err != nil {
				return err
			}
			out[i] = encrypted
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// DecryptTransactions decrypts a list concurrently, preserving order. The first
// failure fails the whole list.
func (s *CipherServiceImpl) DecryptTransactions(
	ctx context.Context,
	transactions []bankingDomain.EncryptedTransaction,
) ([]bankingDomain.Transaction, error) {
	keys, err := s.deviceKeys(ctx)
	if err != nil {
		return nil, err
	}
	defer keys.zero()

	out := make([]bankingDomain.Transaction, len(transactions))
	g, _ := errgroup.WithContext(ctx)
	for i, tx := range transactions {
		g.Go(func() error {
			decrypted, err := s.decryptTransaction(keys, tx)
			if err != nil {
				return err
			}
			out[i] = decrypted
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
