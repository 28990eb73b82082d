package analytics

import (
	"context"
	"time"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// GetDataRangeOutput represents the span of recorded transactions.
type GetDataRangeOutput struct {
	OldestDate        *time.Time `json:"oldestDate"`
	NewestDate        *time.Time `json:"newestDate"`
	TotalTransactions int        `json:"totalTransactions"`
	HasData           bool       `json:"hasData"`
}

// GetDataRangeUseCase reports the dates of the oldest and newest transaction.
type GetDataRangeUseCase struct {
	store adapter.EntityStore
}

// NewGetDataRangeUseCase creates a new GetDataRangeUseCase instance.
func NewGetDataRangeUseCase(store adapter.EntityStore) *GetDataRangeUseCase {
	return &GetDataRangeUseCase{store: store}
}

// Execute retrieves the date range of all transactions.
func (uc *GetDataRangeUseCase) Execute(ctx context.Context) (*GetDataRangeOutput, error) {
	output := &GetDataRangeOutput{}
	err := uc.store.Read(ctx, func(c *entity.Collections) error {
		for _, t := range c.Transactions {
			d := t.Date
			if output.OldestDate == nil || d.Before(*output.OldestDate) {
				output.OldestDate = &d
			}
			if output.NewestDate == nil || d.After(*output.NewestDate) {
				output.NewestDate = &d
			}
		}
		output.TotalTransactions = len(c.Transactions)
		return nil
	})
	if err != nil {
		return nil, err
	}
	output.HasData = output.TotalTransactions > 0
	return output, nil
}
