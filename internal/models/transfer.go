package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer is a row of the append-only transfers table.
type Transfer struct {
	ID          int64           `db:"id"`
	FromAccount int64           `db:"from_account"`
	ToAccount   int64           `db:"to_account"`
	Currency    string          `db:"currency"`
	Amount      decimal.Decimal `db:"amount"`
	CreatedAt   time.Time       `db:"created_at"`
}
