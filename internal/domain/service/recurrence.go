package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// MaxOccurrences bounds how many instances a single recurring series may expand to.
// Ten years of a daily series fit.
const MaxOccurrences = 3660

// stepper returns the n-th occurrence counted from anchor.
type stepper func(anchor time.Time, n int) time.Time

var recurrenceSteppers = map[entity.RecurrenceFrequency]stepper{
	entity.RecurrenceDaily: func(anchor time.Time, n int) time.Time {
		return anchor.AddDate(0, 0, n)
	},
	entity.RecurrenceWeekly: func(anchor time.Time, n int) time.Time {
		return anchor.AddDate(0, 0, 7*n)
	},
	entity.RecurrenceMonthly: func(anchor time.Time, n int) time.Time {
		return valueobject.AddMonthsClamped(anchor, n)
	},
	entity.RecurrenceYearly: func(anchor time.Time, n int) time.Time {
		return valueobject.AddMonthsClamped(anchor, 12*n)
	},
}

// Occurrences lists the dates of a series starting at start, stepping by freq,
// up to and including the calendar day of end. Monthly and yearly steps are always
// taken from start so a day-31 series stays on the last day of short months.
func Occurrences(start, end time.Time, freq entity.RecurrenceFrequency) ([]time.Time, error) {
	step, ok := recurrenceSteppers[freq]
	if !ok {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidRecurrence,
			fmt.Sprintf("unknown recurrence frequency %q", freq),
			domainerror.ErrInvalidRecurrence,
		)
	}
	last := valueobject.DayOf(end)
	if valueobject.DayOf(start).After(last) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidRecurrence,
			"recurrence end date is before the transaction date",
			domainerror.ErrInvalidRecurrence,
		)
	}

	var dates []time.Time
	for n := 0; ; n++ {
		d := step(start, n)
		if valueobject.DayOf(d).After(last) {
			break
		}
		if len(dates) == MaxOccurrences {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidRecurrence,
				fmt.Sprintf("recurrence produces more than %d occurrences", MaxOccurrences),
				domainerror.ErrInvalidRecurrence,
			)
		}
		dates = append(dates, d)
	}
	return dates, nil
}

// ExpandTransaction turns a recurring template into one transaction per occurrence.
// Instances differ from the template only by id and date.
func ExpandTransaction(template *entity.Transaction, newID func() string) ([]*entity.Transaction, error) {
	if template.RecurrenceFrequency == nil || template.RecurrenceEndDate == nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidRecurrence,
			"recurring transactions need a frequency and an end date",
			domainerror.ErrInvalidRecurrence,
		)
	}
	dates, err := Occurrences(template.Date, *template.RecurrenceEndDate, *template.RecurrenceFrequency)
	if err != nil {
		return nil, err
	}

	out := make([]*entity.Transaction, 0, len(dates))
	for _, d := range dates {
		t := template.Clone()
		t.ID = newID()
		t.Date = d
		out = append(out, t)
	}
	return out, nil
}

// ExpandBudgets creates months consecutive monthly budgets from template starting with
// the month of start. Every sibling starts with nothing spent and points at parentID.
func ExpandBudgets(template *entity.Budget, start time.Time, months int, parentID string, newID func() string) ([]*entity.Budget, error) {
	if months < 1 {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidNumberOfMonths,
			"number of months must be at least 1",
			domainerror.ErrInvalidNumberOfMonths,
		)
	}

	anchor := valueobject.StartOfMonth(start)
	out := make([]*entity.Budget, 0, months)
	for i := 0; i < months; i++ {
		monthStart := valueobject.AddMonthsClamped(anchor, i)
		monthEnd := valueobject.EndOfMonth(monthStart)

		b := template.Clone()
		b.ID = newID()
		b.Name = fmt.Sprintf("%s - %s %d", template.Name, monthStart.Month(), monthStart.Year())
		b.Spent = decimal.Zero
		b.StartDate = &monthStart
		b.EndDate = &monthEnd
		b.IsRecurring = true
		pid := parentID
		b.ParentBudgetID = &pid
		out = append(out, b)
	}
	return out, nil
}
