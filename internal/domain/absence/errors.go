package absence

import "errors"

// Absence overlay domain errors
var (
	ErrAbsenceNotFound     = errors.New("absence record not found")
	ErrUnknownType         = errors.New("unknown absence type")
	ErrHoursAlreadyLogged  = errors.New("worked hours are already logged on this day; clear them before marking an absence")
	ErrAbsenceTypeConflict = errors.New("the day is already flagged under another absence type")
	ErrForbidden           = errors.New("not allowed to access this absence record")
)
