package timesheet

import (
	"context"

	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/user"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/ident"
)

type TimesheetService interface {
	// Upsert writes one ledger row, atomically keyed on the composite
	// identity. Fails when the week is locked (unless the caller is a
	// manager), when hours land on an absent day or a public holiday.
	// Never transitions the week validation.
	Upsert(ctx context.Context, caller user.Caller, req UpsertEntryRequest) (HourEntry, error)

	// Delete removes one ledger row; only while the week is still draft.
	Delete(ctx context.Context, caller user.Caller, id ident.ID) error

	List(ctx context.Context, caller user.Caller, filter Filter) (ListResponse, error)

	// EntriesFor returns the raw ledger rows of one employee's week.
	EntriesFor(ctx context.Context, caller user.Caller, employeeID ident.ID, year, wk int) ([]HourEntry, error)

	// Week assembles the weekly view: rows, validation record, holidays,
	// resolved dates and daily totals.
	Week(ctx context.Context, caller user.Caller, employeeID ident.ID, year, wk int) (WeekView, error)
}
