// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	bankingDomain "github.com/allisson/bankvault/internal/banking/domain"
	customValidation "github.com/allisson/bankvault/internal/validation"
)

// ProfileRequest carries a full (PUT) or partial (PATCH) profile.
type ProfileRequest struct {
	UserName       *string  `json:"userName"`
	AccountBalance *float64 `json:"accountBalance"`
	AccountNumber  *string  `json:"accountNumber"`
}

// Validate checks the fields that are present.
func (r *ProfileRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.UserName, customValidation.NotBlank),
		validation.Field(&r.AccountBalance, customValidation.Finite),
		validation.Field(&r.AccountNumber, customValidation.AccountNumber),
	)
}

// ToDomain converts the request into a Profile.
func (r *ProfileRequest) ToDomain() bankingDomain.Profile {
	return bankingDomain.Profile{
		UserName:       r.UserName,
		AccountBalance: r.AccountBalance,
		AccountNumber:  r.AccountNumber,
	}
}

// TransactionRequest carries a new transaction. ID is optional on create.
type TransactionRequest struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Amount   *float64 `json:"amount"`
	Date     string   `json:"date"`
	Type     string   `json:"type"`
	Category string   `json:"category"`
}

// Validate requires an amount and a debit or credit type.
func (r *TransactionRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Amount, validation.NotNil, customValidation.Finite),
		validation.Field(&r.Type,
			validation.Required,
			validation.In(string(bankingDomain.Debit), string(bankingDomain.Credit)),
		),
	)
}

// ToDomain converts the request into a Transaction. Call Validate first.
func (r *TransactionRequest) ToDomain() bankingDomain.Transaction {
	var amount float64
	if r.Amount != nil {
		amount = *r.Amount
	}
	return bankingDomain.Transaction{
		ID:       r.ID,
		Title:    r.Title,
		Subtitle: r.Subtitle,
		Amount:   amount,
		Date:     r.Date,
		Type:     bankingDomain.TransactionType(r.Type),
		Category: r.Category,
	}
}

// ReplaceTransactionsRequest replaces the whole cached list.
type ReplaceTransactionsRequest struct {
	Transactions []TransactionRequest `json:"transactions"`
}

// Validate checks every transaction and requires an id on each.
func (r *ReplaceTransactionsRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Transactions, validation.NotNil, validation.Each(validation.By(func(v any) error {
			tx, ok := v.(TransactionRequest)
			if !ok {
				return validation.NewError("validation_invalid_transaction", "must be a transaction")
			}
			if err := validation.Validate(tx.ID, validation.Required, customValidation.NotBlank); err != nil {
				return err
			}
			return tx.Validate()
		}))),
	)
}

// ToDomain converts the request into a transaction list.
func (r *ReplaceTransactionsRequest) ToDomain() []bankingDomain.Transaction {
	out := make([]bankingDomain.Transaction, 0, len(r.Transactions))
	for i := range r.Transactions {
		out = append(out, r.Transactions[i].ToDomain())
	}
	return out
}

// TransactionUpdateRequest carries a partial transaction update.
type TransactionUpdateRequest struct {
	Title    *string  `json:"title"`
	Subtitle *string  `json:"subtitle"`
	Amount   *float64 `json:"amount"`
	Date     *string  `json:"date"`
	Type     *string  `json:"type"`
	Category *string  `json:"category"`
}

// Validate checks the fields that are present.
func (r *TransactionUpdateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, customValidation.NotBlank),
		validation.Field(&r.Amount, customValidation.Finite),
		validation.Field(&r.Type,
			validation.In(string(bankingDomain.Debit), string(bankingDomain.Credit)),
		),
	)
}

// ToDomain converts the request into a TransactionUpdate.
func (r *TransactionUpdateRequest) ToDomain() bankingDomain.TransactionUpdate {
	u := bankingDomain.TransactionUpdate{
		Title:    r.Title,
		Subtitle: r.Subtitle,
		Amount:   r.Amount,
		Date:     r.Date,
		Category: r.Category,
	}
	if r.Type != nil {
		t := bankingDomain.TransactionType(*r.Type)
		u.Type = &t
	}
	return u
}
