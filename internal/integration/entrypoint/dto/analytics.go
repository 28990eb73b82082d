// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finance-tracker/ledger/internal/application/usecase/analytics"
)

// TrendPointResponse represents a single trend data point.
type TrendPointResponse struct {
	PeriodStart      string `json:"period_start"`
	PeriodLabel      string `json:"period_label"`
	Income           string `json:"income"`
	Expenses         string `json:"expenses"`
	Net              string `json:"net"`
	TransactionCount int    `json:"transaction_count"`
}

// TrendsResponse represents the response for income/expense trends.
type TrendsResponse struct {
	Granularity string               `json:"granularity"`
	Trends      []TrendPointResponse `json:"trends"`
}

// CategoryBreakdownItemResponse represents a category in the breakdown.
type CategoryBreakdownItemResponse struct {
	CategoryID       string `json:"category_id"`
	CategoryName     string `json:"category_name"`
	Amount           string `json:"amount"`
	Percentage       string `json:"percentage"`
	TransactionCount int    `json:"transaction_count"`
}

// CategoryBreakdownResponse represents the response for category breakdown.
type CategoryBreakdownResponse struct {
	PeriodLabel string                          `json:"period_label"`
	Total       string                          `json:"total"`
	Categories  []CategoryBreakdownItemResponse `json:"categories"`
}

// MonthSummaryResponse holds one month's totals.
type MonthSummaryResponse struct {
	Label    string `json:"label"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Savings  string `json:"savings"`
	Net      string `json:"net"`
}

// SpendingInsightsResponse represents the month-over-month insights.
type SpendingInsightsResponse struct {
	Current        MonthSummaryResponse `json:"current"`
	Previous       MonthSummaryResponse `json:"previous"`
	IncomeChange   string               `json:"income_change"`
	ExpensesChange string               `json:"expenses_change"`
	SavingsChange  string               `json:"savings_change"`
	NetShare       string               `json:"net_share"`
}

// ToTrendsResponse converts a GetTrendsOutput.
func ToTrendsResponse(output *analytics.GetTrendsOutput) TrendsResponse {
	trends := make([]TrendPointResponse, len(output.Trends))
	for i, p := range output.Trends {
		trends[i] = TrendPointResponse{
			PeriodStart:      formatDate(p.PeriodStart),
			PeriodLabel:      p.PeriodLabel,
			Income:           money(p.Income),
			Expenses:         money(p.Expenses),
			Net:              money(p.Net),
			TransactionCount: p.TransactionCount,
		}
	}
	return TrendsResponse{Granularity: string(output.Granularity), Trends: trends}
}

// ToCategoryBreakdownResponse converts a GetCategoryBreakdownOutput.
func ToCategoryBreakdownResponse(output *analytics.GetCategoryBreakdownOutput) CategoryBreakdownResponse {
	items := make([]CategoryBreakdownItemResponse, len(output.Categories))
	for i, c := range output.Categories {
		items[i] = CategoryBreakdownItemResponse{
			CategoryID:       c.CategoryID,
			CategoryName:     c.CategoryName,
			Amount:           money(c.Amount),
			Percentage:       c.Percentage.StringFixed(2),
			TransactionCount: c.TransactionCount,
		}
	}
	return CategoryBreakdownResponse{
		PeriodLabel: output.PeriodLabel,
		Total:       money(output.Total),
		Categories:  items,
	}
}

// ToSpendingInsightsResponse converts a SpendingInsightsOutput.
func ToSpendingInsightsResponse(output *analytics.SpendingInsightsOutput) SpendingInsightsResponse {
	summary := func(s analytics.MonthSummary) MonthSummaryResponse {
		return MonthSummaryResponse{
			Label:    s.Label,
			Income:   money(s.Income),
			Expenses: money(s.Expenses),
			Savings:  money(s.Savings),
			Net:      money(s.Net),
		}
	}
	return SpendingInsightsResponse{
		Current:        summary(output.Current),
		Previous:       summary(output.Previous),
		IncomeChange:   output.IncomeChange.StringFixed(1),
		ExpensesChange: output.ExpensesChange.StringFixed(1),
		SavingsChange:  output.SavingsChange.StringFixed(1),
		NetShare:       output.NetShare.StringFixed(1),
	}
}

// DataRangeResponse represents the span of recorded transactions.
type DataRangeResponse struct {
	OldestDate        *string `json:"oldest_date"`
	NewestDate        *string `json:"newest_date"`
	TotalTransactions int     `json:"total_transactions"`
	HasData           bool    `json:"has_data"`
}

// ToDataRangeResponse converts a GetDataRangeOutput.
func ToDataRangeResponse(output *analytics.GetDataRangeOutput) DataRangeResponse {
	return DataRangeResponse{
		OldestDate:        formatOptionalDate(output.OldestDate),
		NewestDate:        formatOptionalDate(output.NewestDate),
		TotalTransactions: output.TotalTransactions,
		HasData:           output.HasData,
	}
}
