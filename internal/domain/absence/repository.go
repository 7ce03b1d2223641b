package absence

import (
	"context"

	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/ident"
)

type AbsenceRepository interface {
	// Upsert writes the record keyed on (employee_id, year, week, type)
	// in a single atomic statement.
	Upsert(ctx context.Context, record AbsenceRecord) (AbsenceRecord, error)

	GetByID(ctx context.Context, id ident.ID) (AbsenceRecord, error)

	Delete(ctx context.Context, id ident.ID) error

	// ListForWeek returns every record of one employee's week, all types.
	ListForWeek(ctx context.Context, employeeID ident.ID, year, wk int) ([]AbsenceRecord, error)

	List(ctx context.Context, filter Filter) ([]AbsenceRecord, int64, error)

	// SetStatusForWeek re-syncs the status mirror after a week validation
	// transition.
	SetStatusForWeek(ctx context.Context, employeeID ident.ID, year, wk int, status string) error
}
