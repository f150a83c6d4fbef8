package domain_test

import (
	"strings"
	"testing"

	"github.com/SscSPs/money_transfer_app/internal/apperrors"
	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	tests := []struct {
		name    string
		owner   string
		balance domain.Money
		wantErr error
	}{
		{name: "valid", owner: "Alice", balance: domain.MustMoney("USD", "100.21")},
		{name: "zero balance", owner: "Bob", balance: domain.MustMoney("EUR", "0")},
		{name: "max length owner", owner: strings.Repeat("a", domain.MaxOwnerLength), balance: domain.MustMoney("USD", "1")},
		{name: "multibyte owner counted in characters", owner: strings.Repeat("ł", domain.MaxOwnerLength), balance: domain.MustMoney("PLN", "1")},
		{name: "owner too long", owner: strings.Repeat("a", domain.MaxOwnerLength+1), balance: domain.MustMoney("USD", "1"), wantErr: apperrors.ErrValidation},
		{name: "blank owner", owner: "   ", balance: domain.MustMoney("USD", "1"), wantErr: apperrors.ErrValidation},
		{name: "negative balance", owner: "Carol", balance: domain.MustMoney("USD", "-0.01"), wantErr: apperrors.ErrValidation},
		{name: "missing currency", owner: "Dave", balance: domain.Money{}, wantErr: apperrors.ErrInvalidCurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc, err := domain.NewAccount(tt.owner, tt.balance)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Zero(t, acc.ID)
			assert.Equal(t, strings.TrimSpace(tt.owner), acc.Owner)
			assert.Equal(t, tt.balance.Currency(), acc.Currency())
		})
	}
}

func TestAccount_WithID(t *testing.T) {
	acc, err := domain.NewAccount("Alice", domain.MustMoney("USD", "1.00"))
	require.NoError(t, err)

	persisted := acc.WithID(42)
	assert.Equal(t, int64(42), persisted.ID)
	assert.Zero(t, acc.ID)
}
