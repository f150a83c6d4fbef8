package domain

import (
	"fmt"

	"github.com/SscSPs/money_transfer_app/internal/apperrors"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Money is an immutable amount of a single ISO 4217 currency.
// The amount is always held at the currency's minor-unit scale (2 for USD, 0 for JPY, ...).
type Money struct {
	currency string
	amount   decimal.Decimal
	scale    int32
}

// MaxIntegerDigits is the number of digits left of the decimal point that a NUMERIC(19,4)
// column can hold.
const MaxIntegerDigits = 15

var maxAmountBound = decimal.New(1, MaxIntegerDigits)

// NewMoney builds a Money value. Digits beyond the currency's minor-unit scale are
// truncated toward zero, never rounded: 1.567 USD becomes 1.56 and -1.567 USD becomes -1.56.
// Amounts with more than MaxIntegerDigits integer digits fail with KindInvalidAmount.
func NewMoney(currencyCode string, amount decimal.Decimal) (Money, error) {
	scale, err := CurrencyScale(currencyCode)
	if err != nil {
		return Money{}, err
	}

	// NumDigits may be off by one, so it only screens out extreme exponents before any rescale.
	if amount.IsZero() {
		amount = decimal.Zero
	} else {
		intDigits := amount.NumDigits() + int(amount.Exponent())
		if intDigits > MaxIntegerDigits+1 {
			return Money{}, amountTooLarge()
		}
		// Magnitude below one minor unit.
		if intDigits < -int(scale)-1 {
			amount = decimal.Zero
		}
	}

	truncated := amount.Truncate(scale)
	if truncated.Abs().Cmp(maxAmountBound) >= 0 {
		return Money{}, amountTooLarge()
	}

	return Money{
		currency: currencyCode,
		amount:   atScale(truncated, scale),
		scale:    scale,
	}, nil
}

// MustMoney is NewMoney for literals known to be valid. It panics otherwise.
func MustMoney(currencyCode string, amount string) Money {
	m, err := NewMoney(currencyCode, decimal.RequireFromString(amount))
	if err != nil {
		panic(err)
	}
	return m
}

// ZeroMoney returns zero of the given currency.
func ZeroMoney(currencyCode string) (Money, error) {
	return NewMoney(currencyCode, decimal.Zero)
}

func amountTooLarge() error {
	return apperrors.NewTransferError(apperrors.KindInvalidAmount,
		fmt.Sprintf("amount exceeds %d integer digits", MaxIntegerDigits), nil)
}

// CurrencyScale returns the number of minor-unit digits of a recognised ISO 4217 code.
func CurrencyScale(currencyCode string) (int32, error) {
	unit, err := currency.ParseISO(currencyCode)
	if err != nil || unit.String() != currencyCode {
		return 0, apperrors.NewTransferError(apperrors.KindInvalidCurrency,
			fmt.Sprintf("unrecognised currency code %q", currencyCode), err)
	}
	scale, _ := currency.Standard.Rounding(unit)
	return int32(scale), nil
}

// atScale pads d with trailing zeros so its exponent is exactly -scale.
func atScale(d decimal.Decimal, scale int32) decimal.Decimal {
	if d.Exponent() == -scale {
		return d
	}
	return decimal.New(0, -scale).Add(d)
}

func (m Money) Currency() string {
	return m.currency
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Scale() int32 {
	return m.scale
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsValid reports whether m was built by NewMoney rather than being the zero struct.
func (m Money) IsValid() bool {
	return m.currency != ""
}

// String renders the amount at the currency scale, e.g. "1.50".
func (m Money) String() string {
	return m.amount.StringFixed(m.scale)
}

// Add returns m + other. Both operands must share a currency.
func (m Money) Add(other Money) (Money, error) {
	if err := m.requireSameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{currency: m.currency, amount: m.amount.Add(other.amount), scale: m.scale}, nil
}

// Sub returns m - other. Both operands must share a currency.
func (m Money) Sub(other Money) (Money, error) {
	if err := m.requireSameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{currency: m.currency, amount: m.amount.Sub(other.amount), scale: m.scale}, nil
}

// Cmp compares two amounts of the same currency: -1 if m < other, 0 if equal, +1 if m > other.
func (m Money) Cmp(other Money) (int, error) {
	if err := m.requireSameCurrency(other); err != nil {
		return 0, err
	}
	return m.amount.Cmp(other.amount), nil
}

// Equal compares two amounts of the same currency.
func (m Money) Equal(other Money) (bool, error) {
	c, err := m.Cmp(other)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}

func (m Money) requireSameCurrency(other Money) error {
	if m.currency != other.currency {
		return apperrors.NewTransferError(apperrors.KindCurrencyMismatch,
			fmt.Sprintf("currency mismatch: %s vs %s", m.currency, other.currency), nil)
	}
	return nil
}
