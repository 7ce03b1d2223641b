package validation

import "errors"

// Week validation domain errors. All of these are expected, recoverable
// conditions surfaced to the caller as client errors.
var (
	ErrWeekLocked       = errors.New("the week is submitted or validated and can no longer be edited")
	ErrEmptyWeek        = errors.New("cannot submit a week with zero hours")
	ErrAlreadySubmitted = errors.New("the week has already been submitted")
	ErrAlreadyValidated = errors.New("the week has already been validated")
	ErrNotSubmitted     = errors.New("the week is not awaiting validation")
	ErrMissingComment   = errors.New("a rejection comment is required")
	ErrNotFound         = errors.New("week validation not found")
	ErrForbidden        = errors.New("not allowed to act on this week")
)
