package timesheet

import "errors"

// Hour ledger domain errors
var (
	ErrEntryNotFound       = errors.New("hour entry not found")
	ErrConflictWithAbsence = errors.New("hours cannot be logged on a day marked as absence")
	ErrHolidayConflict     = errors.New("hours cannot be logged on a public holiday")
	ErrForbidden           = errors.New("not allowed to access this hour entry")
)
