package absence

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/holiday"
	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/user"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/ident"
)

type AbsenceService interface {
	// Set upserts the record for (employee, year, week, type). Fails when
	// the week is locked, when a flagged day already carries worked hours,
	// or when the day is flagged under another type.
	Set(ctx context.Context, caller user.Caller, req SetAbsenceRequest) (AbsenceRecord, error)

	// Delete removes one record; only while the week is still draft.
	Delete(ctx context.Context, caller user.Caller, id ident.ID) error

	List(ctx context.Context, caller user.Caller, filter Filter) (ListResponse, error)

	// DaysCount returns the flagged weekday count for one type.
	DaysCount(ctx context.Context, employeeID ident.ID, year, wk int, t Type) (int, error)

	// HoursFor converts the flagged day count to hours at the fixed
	// full-day equivalence.
	HoursFor(ctx context.Context, employeeID ident.ID, year, wk int, t Type) (decimal.Decimal, error)

	// Holidays lists the public holidays of a year.
	Holidays(ctx context.Context, year int) ([]holiday.Holiday, error)
}
