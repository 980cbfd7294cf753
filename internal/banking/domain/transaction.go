package domain

import (
	"fmt"

	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/allisson/bankvault/internal/crypto/domain"
	customValidation "github.com/allisson/bankvault/internal/validation"
)

// TransactionType is the direction of money movement.
type TransactionType string

const (
	Debit  TransactionType = "debit"
	Credit TransactionType = "credit"
)

// Validate checks that the type is debit or credit.
func (t TransactionType) Validate() error {
	switch t {
	case Debit, Credit:
		return nil
	default:
		return ErrInvalidTransactionType
	}
}

// ParseTransactionType converts a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Transaction is a single entry of the cached transaction list. Date is free-form
// display text ("Today", "Dec 15") and is never parsed.
type Transaction struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Subtitle string          `json:"subtitle"`
	Amount   float64         `json:"amount"`
	Date     string          `json:"date"`
	Type     TransactionType `json:"type"`
	Category string          `json:"category"`
}

// Validate checks the identifier, the amount and the transaction type.
func (t Transaction) Validate() error {
	err := validation.ValidateStruct(&t,
		validation.Field(&t.ID, validation.Required, customValidation.NotBlank),
		validation.Field(&t.Amount, customValidation.Finite),
		validation.Field(&t.Type, validation.Required, validation.In(Debit, Credit)),
	)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTransaction, err.Error())
	}
	return nil
}

// TransactionUpdate is a partial update of a transaction. The identifier is not
// updatable.
type TransactionUpdate struct {
	Title    *string          `json:"title,omitempty"`
	Subtitle *string          `json:"subtitle,omitempty"`
	Amount   *float64         `json:"amount,omitempty"`
	Date     *string          `json:"date,omitempty"`
	Type     *TransactionType `json:"type,omitempty"`
	Category *string          `json:"category,omitempty"`
}

// Validate checks the fields that are present.
func (u TransactionUpdate) Validate() error {
	if u.Type != nil {
		if err := u.Type.Validate(); err != nil {
			return err
		}
	}
	if err := customValidation.Finite.Validate(u.Amount); err != nil {
		return fmt.Errorf("%w: amount: %s", ErrInvalidTransaction, err.Error())
	}
	return nil
}

// Apply returns a copy of t with every field present in u applied.
func (t Transaction) Apply(u TransactionUpdate) Transaction {
	updated := t
	if u.Title != nil {
		updated.Title = *u.Title
	}
	if u.Subtitle != nil {
		updated.Subtitle = *u.Subtitle
	}
	if u.Amount != nil {
		updated.Amount = *u.Amount
	}
	if u.Date != nil {
		updated.Date = *u.Date
	}
	if u.Type != nil {
		updated.Type = *u.Type
	}
	if u.Category != nil {
		updated.Category = *u.Category
	}
	return updated
}

// EncryptedTransaction keeps ID in clear for lookups and encrypts every other field.
// Empty text fields are omitted rather than encrypted, since an empty plaintext never
// decrypts.
type EncryptedTransaction struct {
	ID       string                       `json:"id"`
	Title    *cryptoDomain.EncryptedValue `json:"title,omitempty"`
	Subtitle *cryptoDomain.EncryptedValue `json:"subtitle,omitempty"`
	Amount   cryptoDomain.EncryptedValue  `json:"amount"`
	Date     *cryptoDomain.EncryptedValue `json:"date,omitempty"`
	Type     cryptoDomain.EncryptedValue  `json:"type"`
	Category *cryptoDomain.EncryptedValue `json:"category,omitempty"`
}
