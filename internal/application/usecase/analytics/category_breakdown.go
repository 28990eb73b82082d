package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// UncategorizedID identifies transactions whose category no longer exists.
const UncategorizedID = "uncategorized"

// UncategorizedName is the display name used for UncategorizedID.
const UncategorizedName = "Uncategorized"

// GetCategoryBreakdownInput represents the input for getting category breakdown.
// Type defaults to Expense.
type GetCategoryBreakdownInput struct {
	StartDate time.Time
	EndDate   time.Time
	Type      entity.TransactionType
}

// CategoryBreakdownItem represents a single category in the breakdown.
type CategoryBreakdownItem struct {
	CategoryID       string          `json:"categoryId"`
	CategoryName     string          `json:"categoryName"`
	Amount           decimal.Decimal `json:"amount"`
	Percentage       decimal.Decimal `json:"percentage"`
	TransactionCount int             `json:"transactionCount"`
}

// GetCategoryBreakdownOutput represents the output of getting category breakdown.
type GetCategoryBreakdownOutput struct {
	PeriodLabel string                  `json:"periodLabel"`
	Total       decimal.Decimal         `json:"total"`
	Categories  []CategoryBreakdownItem `json:"categories"`
}

// GetCategoryBreakdownUseCase handles getting totals by category.
type GetCategoryBreakdownUseCase struct {
	store adapter.EntityStore
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(store adapter.EntityStore) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{store: store}
}

// Execute groups the range's transactions of one type by category, sorted by amount descending.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	if err := validateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}
	txType := input.Type
	if txType == "" {
		txType = entity.TransactionTypeExpense
	}

	output := &GetCategoryBreakdownOutput{
		PeriodLabel: generatePeriodLabel(input.StartDate, input.EndDate),
		Total:       decimal.Zero,
		Categories:  []CategoryBreakdownItem{},
	}

	err := uc.store.Read(ctx, func(c *entity.Collections) error {
		byID := map[string]*CategoryBreakdownItem{}
		var order []string
		for _, t := range c.Transactions {
			if t.Type != txType || !inRange(t, input.StartDate, input.EndDate) {
				continue
			}
			id, name := UncategorizedID, UncategorizedName
			if cat := c.Category(t.CategoryID); cat != nil {
				id, name = cat.ID, cat.Name
			}
			item, ok := byID[id]
			if !ok {
				item = &CategoryBreakdownItem{CategoryID: id, CategoryName: name, Amount: decimal.Zero}
				byID[id] = item
				order = append(order, id)
			}
			item.Amount = item.Amount.Add(t.Amount)
			item.TransactionCount++
			output.Total = output.Total.Add(t.Amount)
		}

		for _, id := range order {
			item := *byID[id]
			item.Percentage = decimal.Zero
			if output.Total.IsPositive() {
				item.Percentage = item.Amount.Mul(decimal.NewFromInt(100)).Div(output.Total).Round(2)
			}
			output.Categories = append(output.Categories, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(output.Categories, func(i, j int) bool {
		return output.Categories[i].Amount.GreaterThan(output.Categories[j].Amount)
	})
	return output, nil
}

// generatePeriodLabel generates a human-readable label for the period.
func generatePeriodLabel(startDate, endDate time.Time) string {
	if startDate.Year() == endDate.Year() && startDate.Month() == endDate.Month() {
		return GeneratePeriodLabel(startDate, GranularityMonthly)
	}

	startQuarter := (int(startDate.Month())-1)/3 + 1
	endQuarter := (int(endDate.Month())-1)/3 + 1
	if startDate.Year() == endDate.Year() && startQuarter == endQuarter {
		return GeneratePeriodLabel(startDate, GranularityQuarterly)
	}

	return GeneratePeriodLabel(startDate, GranularityMonthly) + " - " + GeneratePeriodLabel(endDate, GranularityMonthly)
}
