package dto

import (
	bankingDomain "github.com/allisson/bankvault/internal/banking/domain"
)

// ProfileResponse is a profile together with where it came from.
type ProfileResponse struct {
	UserName       *string              `json:"userName,omitempty"`
	AccountBalance *float64             `json:"accountBalance,omitempty"`
	AccountNumber  *string              `json:"accountNumber,omitempty"`
	Source         bankingDomain.Source `json:"source"`
}

// MapProfileToResponse converts a domain profile to an API response.
func MapProfileToResponse(p bankingDomain.Profile, source bankingDomain.Source) ProfileResponse {
	return ProfileResponse{
		UserName:       p.UserName,
		AccountBalance: p.AccountBalance,
		AccountNumber:  p.AccountNumber,
		Source:         source,
	}
}

// MaskedAccountNumberResponse carries an account number masked for display.
type MaskedAccountNumberResponse struct {
	MaskedAccountNumber string               `json:"maskedAccountNumber"`
	Source              bankingDomain.Source `json:"source"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	Type     string  `json:"type"`
	Category string  `json:"category"`
}

// MapTransactionToResponse converts a domain transaction to an API response.
func MapTransactionToResponse(t bankingDomain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:       t.ID,
		Title:    t.Title,
		Subtitle: t.Subtitle,
		Amount:   t.Amount,
		Date:     t.Date,
		Type:     string(t.Type),
		Category: t.Category,
	}
}

// ListTransactionsResponse is a page of transactions.
type ListTransactionsResponse struct {
	Data   []TransactionResponse `json:"data"`
	Total  int                   `json:"total"`
	Source bankingDomain.Source  `json:"source"`
}

// MapTransactionsToListResponse converts a page of transactions to an API response.
// total is the size of the full list.
func MapTransactionsToListResponse(
	page []bankingDomain.Transaction,
	total int,
	source bankingDomain.Source,
) ListTransactionsResponse {
	data := make([]TransactionResponse, 0, len(page))
	for _, t := range page {
		data = append(data, MapTransactionToResponse(t))
	}
	return ListTransactionsResponse{Data: data, Total: total, Source: source}
}

// BootstrapResponse reports which records were seeded.
type BootstrapResponse struct {
	ProfileSeeded      bool `json:"profile_seeded"`
	TransactionsSeeded bool `json:"transactions_seeded"`
}

// StatusResponse summarizes the state of the secure cache.
type StatusResponse struct {
	StorageType     string `json:"storage_type"`
	EncryptionReady bool   `json:"encryption_ready"`
	HasProfile      bool   `json:"has_profile"`
	HasTransactions bool   `json:"has_transactions"`
}

// MapStatusToResponse converts a domain status to an API response.
func MapStatusToResponse(s *bankingDomain.Status) StatusResponse {
	return StatusResponse{
		StorageType:     string(s.StorageType),
		EncryptionReady: s.EncryptionReady,
		HasProfile:      s.HasProfile,
		HasTransactions: s.HasTransactions,
	}
}
