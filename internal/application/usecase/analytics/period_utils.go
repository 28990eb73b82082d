// Package analytics contains read-only reporting use cases.
package analytics

import (
	"fmt"
	"time"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// Granularity represents the time granularity of a series.
type Granularity string

const (
	GranularityWeekly    Granularity = "weekly"
	GranularityMonthly   Granularity = "monthly"
	GranularityQuarterly Granularity = "quarterly"
)

// PeriodInfo holds information about a single period.
type PeriodInfo struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
	PeriodLabel string
}

// GeneratePeriodLabel generates a human-readable label for a period based on granularity.
// Formats:
// - Weekly: "W{week} {year}" (e.g., "W12 2025")
// - Monthly: "{month_abbr} {year}" (e.g., "Mar 2025")
// - Quarterly: "Q{quarter} {year}" (e.g., "Q1 2025")
func GeneratePeriodLabel(date time.Time, granularity Granularity) string {
	switch granularity {
	case GranularityWeekly:
		year, week := date.ISOWeek()
		return fmt.Sprintf("W%d %d", week, year)
	case GranularityMonthly:
		return date.Format("Jan 2006")
	case GranularityQuarterly:
		quarter := (int(date.Month())-1)/3 + 1
		return fmt.Sprintf("Q%d %d", quarter, date.Year())
	default:
		return date.Format("2006-01-02")
	}
}

// GeneratePeriodSeries generates all periods between startDate and endDate for the given granularity,
// so a series has no gaps even where nothing was recorded.
func GeneratePeriodSeries(startDate, endDate time.Time, granularity Granularity) []PeriodInfo {
	var periods []PeriodInfo
	current := periodStart(startDate, granularity)
	last := valueobject.DayOf(endDate)

	for !current.After(last) {
		next := advance(current, granularity)
		periods = append(periods, PeriodInfo{
			PeriodStart: current,
			PeriodEnd:   next.AddDate(0, 0, -1),
			PeriodLabel: GeneratePeriodLabel(current, granularity),
		})
		current = next
	}
	return periods
}

// GetPeriodKeyForDate returns a unique key for the period containing the given date.
func GetPeriodKeyForDate(date time.Time, granularity Granularity) string {
	return periodStart(date, granularity).Format("2006-01-02")
}

func periodStart(date time.Time, granularity Granularity) time.Time {
	switch granularity {
	case GranularityWeekly:
		return getWeekStartDate(date)
	case GranularityQuarterly:
		quarter := (int(date.Month()) - 1) / 3
		return time.Date(date.Year(), time.Month(quarter*3+1), 1, 0, 0, 0, 0, date.Location())
	default:
		return valueobject.StartOfMonth(date)
	}
}

func advance(start time.Time, granularity Granularity) time.Time {
	switch granularity {
	case GranularityWeekly:
		return start.AddDate(0, 0, 7)
	case GranularityQuarterly:
		return start.AddDate(0, 3, 0)
	default:
		return start.AddDate(0, 1, 0)
	}
}

// getWeekStartDate returns the Monday of the week containing the given date.
func getWeekStartDate(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	return time.Date(date.Year(), date.Month(), date.Day()-(weekday-1), 0, 0, 0, 0, date.Location())
}

// validateRange checks a reporting range.
func validateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return domainerror.NewAnalyticsError(
			domainerror.ErrCodeMissingDateRange,
			"start_date and end_date are required",
			domainerror.ErrMissingDateRange,
		)
	}
	if valueobject.DayOf(end).Before(valueobject.DayOf(start)) {
		return domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}
	return nil
}

func inRange(t *entity.Transaction, start, end time.Time) bool {
	return valueobject.WithinDays(t.Date, &start, &end)
}
