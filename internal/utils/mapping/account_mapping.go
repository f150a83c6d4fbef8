package mapping

import (
	"fmt"

	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	"github.com/SscSPs/money_transfer_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		ID:       d.ID,
		Owner:    d.Owner,
		Currency: d.Currency(),
		Balance:  d.Balance.Amount(),
	}
}

// ToDomainAccount converts a model Account to a domain Account.
// It fails when the stored currency code is not a recognised ISO 4217 code.
func ToDomainAccount(m models.Account) (domain.Account, error) {
	balance, err := domain.NewMoney(m.Currency, m.Balance)
	if err != nil {
		return domain.Account{}, fmt.Errorf("account %d: %w", m.ID, err)
	}
	return domain.Account{
		ID:      m.ID,
		Owner:   m.Owner,
		Balance: balance,
	}, nil
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) ([]domain.Account, error) {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		d, err := ToDomainAccount(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
