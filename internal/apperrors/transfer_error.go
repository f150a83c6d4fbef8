package apperrors

import "errors"

// Kind is the stable, machine readable classification of a transfer failure.
type Kind string

const (
	KindAccountNotFound    Kind = "ACCOUNT_NOT_FOUND"
	KindCurrencyMismatch   Kind = "CURRENCY_MISMATCH"
	KindInsufficientFunds  Kind = "INSUFFICIENT_FUNDS"
	KindInvalidAmount      Kind = "INVALID_AMOUNT"
	KindSameAccount        Kind = "SAME_ACCOUNT"
	KindInvalidCurrency    Kind = "INVALID_CURRENCY"
	KindConcurrentConflict Kind = "CONCURRENT_CONFLICT"
)

var kindSentinels = map[Kind]error{
	KindAccountNotFound:    ErrAccountNotFound,
	KindCurrencyMismatch:   ErrCurrencyMismatch,
	KindInsufficientFunds:  ErrInsufficientFunds,
	KindInvalidAmount:      ErrInvalidAmount,
	KindSameAccount:        ErrSameAccount,
	KindInvalidCurrency:    ErrInvalidCurrency,
	KindConcurrentConflict: ErrConcurrentConflict,
}

// TransferError is the closed set of failures the transfer engine and the money
// value object return. errors.Is matches both the kind sentinel (ErrInsufficientFunds,
// ErrAccountNotFound, ...) and the underlying cause, if any.
type TransferError struct {
	Kind    Kind
	Message string
	Err     error
}

// NewTransferError builds a TransferError. cause may be nil.
func NewTransferError(kind Kind, message string, cause error) *TransferError {
	return &TransferError{Kind: kind, Message: message, Err: cause}
}

func (e *TransferError) Error() string {
	return e.Message
}

func (e *TransferError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if sentinel, ok := kindSentinels[e.Kind]; ok {
		errs = append(errs, sentinel)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindOf returns the kind of the first TransferError in err's chain.
func KindOf(err error) (Kind, bool) {
	var te *TransferError
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return "", false
}
