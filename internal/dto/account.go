package dto

import (
	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to open a new account.
// Balance is the opening balance and defaults to zero.
type CreateAccountRequest struct {
	Owner    string          `json:"owner" binding:"required,max=50"`
	Currency string          `json:"currency" binding:"required,iso4217"`
	Balance  decimal.Decimal `json:"balance" swaggertype:"string" example:"100.21"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	ID       int64  `json:"id"`
	Owner    string `json:"owner"`
	Balance  string `json:"balance" example:"100.21"`
	Currency string `json:"currency" example:"USD"`
}

// AccountURIParams binds the account id path segment.
type AccountURIParams struct {
	AccountID int64 `uri:"accountID" binding:"required,gt=0"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:       acc.ID,
		Owner:    acc.Owner,
		Balance:  acc.Balance.String(),
		Currency: acc.Currency(),
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
