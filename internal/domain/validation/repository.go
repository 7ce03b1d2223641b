package validation

import (
	"context"

	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/ident"
)

// WeekValidationRepository persists lifecycle records, one row per
// (employee, year, week).
type WeekValidationRepository interface {
	// Upsert writes the record keyed on (employee_id, year, week) in a
	// single atomic statement.
	Upsert(ctx context.Context, v WeekValidation) (WeekValidation, error)

	// GetForWeek returns ErrNotFound when no record exists yet; callers
	// treat a missing record as Draft.
	GetForWeek(ctx context.Context, employeeID ident.ID, year, wk int) (WeekValidation, error)

	// ListSubmitted returns every record awaiting manager action, joined
	// with the employee name, ordered by employee then oldest week first.
	ListSubmitted(ctx context.Context) ([]WeekValidation, error)
}
