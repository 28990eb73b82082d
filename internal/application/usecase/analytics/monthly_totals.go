package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// GetTrendsInput represents the input for income/expense totals over a range.
// Granularity defaults to monthly.
type GetTrendsInput struct {
	StartDate   time.Time
	EndDate     time.Time
	Granularity Granularity
}

// TrendPoint represents a single trend data point.
type TrendPoint struct {
	PeriodStart      time.Time       `json:"periodStart"`
	PeriodLabel      string          `json:"periodLabel"`
	Income           decimal.Decimal `json:"income"`
	Expenses         decimal.Decimal `json:"expenses"`
	Net              decimal.Decimal `json:"net"`
	TransactionCount int             `json:"transactionCount"`
}

// GetTrendsOutput represents the output of getting trends.
type GetTrendsOutput struct {
	Granularity Granularity  `json:"granularity"`
	Trends      []TrendPoint `json:"trends"`
}

// GetTrendsUseCase computes per-period income, expense and net totals.
type GetTrendsUseCase struct {
	store adapter.EntityStore
}

// NewGetTrendsUseCase creates a new GetTrendsUseCase instance.
func NewGetTrendsUseCase(store adapter.EntityStore) *GetTrendsUseCase {
	return &GetTrendsUseCase{store: store}
}

// Execute returns one point per period in the range, including empty periods.
// Transfers are counted but contribute to neither income nor expenses.
func (uc *GetTrendsUseCase) Execute(ctx context.Context, input GetTrendsInput) (*GetTrendsOutput, error) {
	if err := validateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}
	granularity := input.Granularity
	switch granularity {
	case "":
		granularity = GranularityMonthly
	case GranularityWeekly, GranularityMonthly, GranularityQuarterly:
	default:
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidGranularity,
			"granularity must be: weekly, monthly, or quarterly",
			domainerror.ErrInvalidGranularity,
		)
	}

	periods := GeneratePeriodSeries(input.StartDate, input.EndDate, granularity)
	trends := make([]TrendPoint, len(periods))
	index := make(map[string]int, len(periods))
	for i, p := range periods {
		trends[i] = TrendPoint{
			PeriodStart: p.PeriodStart,
			PeriodLabel: p.PeriodLabel,
			Income:      decimal.Zero,
			Expenses:    decimal.Zero,
			Net:         decimal.Zero,
		}
		index[GetPeriodKeyForDate(p.PeriodStart, granularity)] = i
	}

	err := uc.store.Read(ctx, func(c *entity.Collections) error {
		for _, t := range c.Transactions {
			if !inRange(t, input.StartDate, input.EndDate) {
				continue
			}
			i, ok := index[GetPeriodKeyForDate(t.Date, granularity)]
			if !ok {
				continue
			}
			point := &trends[i]
			point.TransactionCount++
			switch t.Type {
			case entity.TransactionTypeIncome:
				point.Income = point.Income.Add(t.Amount)
			case entity.TransactionTypeExpense:
				point.Expenses = point.Expenses.Add(t.Amount)
			}
			point.Net = point.Income.Sub(point.Expenses)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &GetTrendsOutput{
		Granularity: granularity,
		Trends:      trends,
	}, nil
}
