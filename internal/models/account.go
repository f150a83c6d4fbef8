package models

import (
	"github.com/shopspring/decimal"
)

// Account is a row of the accounts table.
type Account struct {
	ID       int64           `db:"id"`
	Owner    string          `db:"owner"`
	Currency string          `db:"currency"`
	Balance  decimal.Decimal `db:"balance"`
}
