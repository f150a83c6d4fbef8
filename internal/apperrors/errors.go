package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the storage layer refused a write because of a concurrent one.
var ErrConflict = errors.New("conflict")

// Transfer failure kinds. Each one wraps the generic sentinel the transport layer maps to a status code.
var (
	ErrAccountNotFound    = fmt.Errorf("account not found: %w", ErrNotFound)
	ErrInvalidAmount      = fmt.Errorf("invalid amount: %w", ErrValidation)
	ErrSameAccount        = fmt.Errorf("same account: %w", ErrValidation)
	ErrInvalidCurrency    = fmt.Errorf("invalid currency: %w", ErrValidation)
	ErrCurrencyMismatch   = errors.New("currency mismatch")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrConcurrentConflict = fmt.Errorf("concurrent conflict: %w", ErrConflict)
)

// AppError carries an HTTP-ish code alongside an infrastructure failure.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError wraps err with a code and a message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
