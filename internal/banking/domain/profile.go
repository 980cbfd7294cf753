package domain

import (
	"fmt"

	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/allisson/bankvault/internal/crypto/domain"
	customValidation "github.com/allisson/bankvault/internal/validation"
)

// Profile is the cached account summary shown on the home screen. Every field is
// optional; absent fields are omitted from JSON.
type Profile struct {
	UserName       *string  `json:"userName,omitempty"`
	AccountBalance *float64 `json:"accountBalance,omitempty"`
	AccountNumber  *string  `json:"accountNumber,omitempty"`
}

// Merge returns a copy of p with every field present in update overriding p's value.
func (p Profile) Merge(update Profile) Profile {
	merged := p
	if update.UserName != nil {
		merged.UserName = update.UserName
	}
	if update.AccountBalance != nil {
		merged.AccountBalance = update.AccountBalance
	}
	if update.AccountNumber != nil {
		merged.AccountNumber = update.AccountNumber
	}
	return merged
}

// IsEmpty reports whether no field is set.
func (p Profile) IsEmpty() bool {
	return p.UserName == nil && p.AccountBalance == nil && p.AccountNumber == nil
}

// Validate rejects non-finite balances and malformed account numbers.
func (p Profile) Validate() error {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.AccountBalance, customValidation.Finite),
		validation.Field(&p.AccountNumber, customValidation.AccountNumber),
	)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidProfile, err.Error())
	}
	return nil
}

// EncryptedProfile mirrors Profile with each present field replaced by its EncryptedValue.
type EncryptedProfile struct {
	UserName       *cryptoDomain.EncryptedValue `json:"userName,omitempty"`
	AccountBalance *cryptoDomain.EncryptedValue `json:"accountBalance,omitempty"`
	AccountNumber  *cryptoDomain.EncryptedValue `json:"accountNumber,omitempty"`
}
