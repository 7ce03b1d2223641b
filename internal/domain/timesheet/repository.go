package timesheet

import (
	"context"

	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/ident"
)

type TimesheetRepository interface {
	// Upsert writes the row keyed on (employee_id, project_id, task_id,
	// year, week) in a single atomic statement; a read-then-write
	// sequence would lose updates on form double-submits and retries.
	Upsert(ctx context.Context, entry HourEntry) (HourEntry, error)

	GetByID(ctx context.Context, id ident.ID) (HourEntry, error)

	Delete(ctx context.Context, id ident.ID) error

	// ListForWeek returns every row of one employee's week with project
	// and task names joined.
	ListForWeek(ctx context.Context, employeeID ident.ID, year, wk int) ([]HourEntry, error)

	List(ctx context.Context, filter Filter) ([]HourEntry, int64, error)

	// SetStatusForWeek re-syncs the status mirror after a week validation
	// transition.
	SetStatusForWeek(ctx context.Context, employeeID ident.ID, year, wk int, status string) error
}
