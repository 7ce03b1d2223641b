package timesheet

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/ident"
)

// HourEntry is one ledger row: hours for the seven days of one week,
// for one (employee, project, task). Identity is the composite key
// (employee_id, project_id, task_id, year, week); writes are upserts on it.
type HourEntry struct {
	ID         ident.ID
	EmployeeID ident.ID
	ProjectID  ident.ID
	TaskID     ident.ID
	Year       int
	Week       int

	// Hours holds Monday..Sunday, storage precision one decimal place.
	Hours [7]decimal.Decimal

	Comment *string

	// Status mirrors the owning week validation; re-synced on every
	// transition. The validation record stays authoritative.
	Status string

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	ProjectName *string
	TaskName    *string
}

// Total returns the sum of the seven day values.
func (e HourEntry) Total() decimal.Decimal {
	total := decimal.Zero
	for _, h := range e.Hours {
		total = total.Add(h)
	}
	return total
}

// AggregateHoursByDay sums hours per weekday across entries, for the daily
// total row and for absence/holiday cross-validation.
func AggregateHoursByDay(entries []HourEntry) [7]decimal.Decimal {
	var totals [7]decimal.Decimal
	for i := range totals {
		totals[i] = decimal.Zero
	}
	for _, e := range entries {
		for i, h := range e.Hours {
			totals[i] = totals[i].Add(h)
		}
	}
	return totals
}
