package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/money_transfer_app/internal/apperrors"
	"github.com/SscSPs/money_transfer_app/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var kindStatus = map[apperrors.Kind]int{
	apperrors.KindInvalidAmount:      http.StatusBadRequest,
	apperrors.KindSameAccount:        http.StatusBadRequest,
	apperrors.KindCurrencyMismatch:   http.StatusBadRequest,
	apperrors.KindInvalidCurrency:    http.StatusBadRequest,
	apperrors.KindAccountNotFound:    http.StatusNotFound,
	apperrors.KindInsufficientFunds:  http.StatusUnprocessableEntity,
	apperrors.KindConcurrentConflict: http.StatusConflict,
}

// errorResponse picks the status and body for a service error.
// notFoundMsg is used for plain ErrNotFound, fallbackMsg for anything unclassified.
func errorResponse(err error, notFoundMsg, fallbackMsg string) (int, dto.ErrorResponse) {
	var transferErr *apperrors.TransferError
	if errors.As(err, &transferErr) {
		status, ok := kindStatus[transferErr.Kind]
		if !ok {
			status = http.StatusBadRequest
		}
		return status, dto.ErrorResponse{Error: transferErr.Message, Kind: string(transferErr.Kind)}
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()}
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, dto.ErrorResponse{Error: notFoundMsg}
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.ErrorResponse{Error: "Request conflicted with a concurrent update, please retry"}
	default:
		return http.StatusInternalServerError, dto.ErrorResponse{Error: fallbackMsg}
	}
}

// respondWithError writes the mapped error and logs it at a level matching the status.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, notFoundMsg, fallbackMsg string) {
	status, body := errorResponse(err, notFoundMsg, fallbackMsg)
	if status >= http.StatusInternalServerError {
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
	} else {
		logger.Warn("Request failed", slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, body)
}

// respondWithBindError answers a request whose body or path failed binding.
func respondWithBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + bindErrorMessage(err)})
}

// bindErrorMessage lists failed validation rules by field, or returns the decoder error as is.
func bindErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}
	fields := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
	}
	return strings.Join(fields, "; ")
}
