package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/SscSPs/money_transfer_app/internal/apperrors"
)

// MaxOwnerLength is the longest owner name an account accepts, in characters.
const MaxOwnerLength = 50

// Account represents a monetary account.
// ID is assigned by storage and is zero until the account is persisted.
// The currency of Balance never changes after creation.
type Account struct {
	ID      int64
	Owner   string
	Balance Money
}

// NewAccount validates and builds an account that has not been persisted yet.
func NewAccount(owner string, balance Money) (Account, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return Account{}, fmt.Errorf("%w: owner is required", apperrors.ErrValidation)
	}
	if utf8.RuneCountInString(owner) > MaxOwnerLength {
		return Account{}, fmt.Errorf("%w: owner name characters limit exceeded (max %d)", apperrors.ErrValidation, MaxOwnerLength)
	}
	if !balance.IsValid() {
		return Account{}, apperrors.NewTransferError(apperrors.KindInvalidCurrency, "account currency is required", nil)
	}
	if balance.IsNegative() {
		return Account{}, fmt.Errorf("%w: initial balance must not be negative", apperrors.ErrValidation)
	}
	return Account{Owner: owner, Balance: balance}, nil
}

// Currency returns the account's fixed currency code.
func (a Account) Currency() string {
	return a.Balance.Currency()
}

// WithID returns a copy of the account carrying the storage-assigned id.
func (a Account) WithID(id int64) Account {
	a.ID = id
	return a
}
