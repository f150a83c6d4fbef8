package mapping

import (
	"fmt"

	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	"github.com/SscSPs/money_transfer_app/internal/models"
)

// ToModelTransfer converts a domain Transfer to a model Transfer
func ToModelTransfer(d domain.Transfer) models.Transfer {
	return models.Transfer{
		ID:          d.ID,
		FromAccount: d.FromAccountID,
		ToAccount:   d.ToAccountID,
		Currency:    d.Currency(),
		Amount:      d.Amount.Amount(),
		CreatedAt:   d.Timestamp,
	}
}

// ToDomainTransfer converts a model Transfer to a domain Transfer
func ToDomainTransfer(m models.Transfer) (domain.Transfer, error) {
	amount, err := domain.NewMoney(m.Currency, m.Amount)
	if err != nil {
		return domain.Transfer{}, fmt.Errorf("transfer %d: %w", m.ID, err)
	}
	return domain.Transfer{
		ID:            m.ID,
		FromAccountID: m.FromAccount,
		ToAccountID:   m.ToAccount,
		Amount:        amount,
		Timestamp:     m.CreatedAt.UTC(),
	}, nil
}

// ToDomainTransferSlice converts a slice of model Transfers to a slice of domain Transfers
func ToDomainTransferSlice(ms []models.Transfer) ([]domain.Transfer, error) {
	ds := make([]domain.Transfer, len(ms))
	for i, m := range ms {
		d, err := ToDomainTransfer(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
