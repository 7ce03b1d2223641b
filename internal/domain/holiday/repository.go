package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	ListByYear(ctx context.Context, year int) ([]Holiday, error)
	ListBetween(ctx context.Context, start, end time.Time) ([]Holiday, error)

	// InsertMissing seeds the calendar; dates already present are left
	// untouched.
	InsertMissing(ctx context.Context, holidays []Holiday) error
}
