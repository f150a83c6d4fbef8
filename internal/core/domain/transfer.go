package domain

import (
	"time"

	"github.com/SscSPs/money_transfer_app/internal/apperrors"
)

// Transfer is a movement of value between two accounts of the same currency.
// A candidate transfer has a zero ID and Timestamp; both are set when it is persisted.
// Persisted transfers are append-only ledger entries and are never amended.
type Transfer struct {
	ID            int64
	FromAccountID int64
	ToAccountID   int64
	Amount        Money
	Timestamp     time.Time
}

// NewTransfer builds a validated candidate transfer.
func NewTransfer(fromAccountID, toAccountID int64, amount Money) (Transfer, error) {
	t := Transfer{FromAccountID: fromAccountID, ToAccountID: toAccountID, Amount: amount}
	if err := t.Validate(); err != nil {
		return Transfer{}, err
	}
	return t, nil
}

// Validate checks the shape of the transfer. It needs no storage access.
func (t Transfer) Validate() error {
	if !t.Amount.IsValid() {
		return apperrors.NewTransferError(apperrors.KindInvalidCurrency, "Transfer currency is required", nil)
	}
	if !t.Amount.IsPositive() {
		return apperrors.NewTransferError(apperrors.KindInvalidAmount, "Transfer amount must be greater than 0", nil)
	}
	if t.FromAccountID == t.ToAccountID {
		return apperrors.NewTransferError(apperrors.KindSameAccount, "Cannot transfer to the same account", nil)
	}
	return nil
}

func (t Transfer) Currency() string {
	return t.Amount.Currency()
}

// Involves reports whether the account is the source or the destination.
func (t Transfer) Involves(accountID int64) bool {
	return t.FromAccountID == accountID || t.ToAccountID == accountID
}

// Persisted returns a copy carrying the storage id and the execution timestamp.
func (t Transfer) Persisted(id int64, timestamp time.Time) Transfer {
	t.ID = id
	t.Timestamp = timestamp
	return t
}
