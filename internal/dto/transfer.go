package dto

import (
	"time"

	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransferRequest defines a transfer between two accounts.
// Amount accepts a JSON number or string; digits beyond the currency's minor unit are truncated.
type CreateTransferRequest struct {
	FromAccountID int64            `json:"fromAccountID" binding:"required,gt=0"`
	ToAccountID   int64            `json:"toAccountID" binding:"required,gt=0"`
	Amount        *decimal.Decimal `json:"amount" binding:"required" swaggertype:"string" example:"10.12"`
	Currency      string           `json:"currency" binding:"required,iso4217" example:"USD"`
}

// ToDomain builds the candidate transfer. It fails only when the currency has no known scale.
func (r CreateTransferRequest) ToDomain() (domain.Transfer, error) {
	amount, err := domain.NewMoney(r.Currency, *r.Amount)
	if err != nil {
		return domain.Transfer{}, err
	}
	return domain.Transfer{
		FromAccountID: r.FromAccountID,
		ToAccountID:   r.ToAccountID,
		Amount:        amount,
	}, nil
}

// TransferResponse defines the data returned for a transfer.
type TransferResponse struct {
	ID            int64     `json:"id"`
	FromAccountID int64     `json:"fromAccountID"`
	ToAccountID   int64     `json:"toAccountID"`
	Amount        string    `json:"amount" example:"10.12"`
	Currency      string    `json:"currency" example:"USD"`
	Timestamp     time.Time `json:"timestamp"`
}

// TransferURIParams binds the path of a single transfer seen from one account.
type TransferURIParams struct {
	AccountID  int64 `uri:"accountID" binding:"required,gt=0"`
	TransferID int64 `uri:"transferID" binding:"required,gt=0"`
}

// ToTransferResponse converts a domain.Transfer to TransferResponse DTO
func ToTransferResponse(t *domain.Transfer) TransferResponse {
	return TransferResponse{
		ID:            t.ID,
		FromAccountID: t.FromAccountID,
		ToAccountID:   t.ToAccountID,
		Amount:        t.Amount.String(),
		Currency:      t.Currency(),
		Timestamp:     t.Timestamp,
	}
}

// ToListTransferResponse converts a slice of domain.Transfer to a slice of TransferResponse DTOs
func ToListTransferResponse(transfers []domain.Transfer) []TransferResponse {
	res := make([]TransferResponse, len(transfers))
	for i := range transfers {
		res[i] = ToTransferResponse(&transfers[i])
	}
	return res
}
