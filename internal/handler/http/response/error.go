package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/absence"
	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/auth"
	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/employee"
	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/project"
	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/timesheet"
	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/user"
	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/validation"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/validator"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/week"
)

// HandleError maps domain errors to HTTP responses. Expected domain
// conditions are answered without logging; only the fall-through 500 path
// is a server fault.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var invalidWeek week.ErrInvalidWeek
	if errors.As(err, &invalidWeek) {
		BadRequest(w, err.Error(), nil)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")

	// Week validation lifecycle errors
	case errors.Is(err, validation.ErrWeekLocked):
		Conflict(w, "The week is locked and can no longer be edited")
	case errors.Is(err, validation.ErrAlreadySubmitted):
		Conflict(w, "The week has already been submitted")
	case errors.Is(err, validation.ErrAlreadyValidated):
		Conflict(w, "The week has already been validated")
	case errors.Is(err, validation.ErrNotSubmitted):
		Conflict(w, "The week is not awaiting validation")
	case errors.Is(err, validation.ErrEmptyWeek):
		BadRequest(w, "Cannot submit a week with zero hours", nil)
	case errors.Is(err, validation.ErrMissingComment):
		BadRequest(w, "A rejection comment is required", nil)
	case errors.Is(err, validation.ErrNotFound):
		NotFound(w, "Week validation not found")
	case errors.Is(err, validation.ErrForbidden):
		Forbidden(w, "Not allowed to act on this week")

	// Hour ledger errors
	case errors.Is(err, timesheet.ErrEntryNotFound):
		NotFound(w, "Hour entry not found")
	case errors.Is(err, timesheet.ErrConflictWithAbsence):
		Conflict(w, "Hours cannot be logged on a day marked as absence")
	case errors.Is(err, timesheet.ErrHolidayConflict):
		Conflict(w, "Hours cannot be logged on a public holiday")
	case errors.Is(err, timesheet.ErrForbidden):
		Forbidden(w, "Not allowed to access this hour entry")

	// Absence overlay errors
	case errors.Is(err, absence.ErrAbsenceNotFound):
		NotFound(w, "Absence record not found")
	case errors.Is(err, absence.ErrUnknownType):
		BadRequest(w, "Unknown absence type", nil)
	case errors.Is(err, absence.ErrHoursAlreadyLogged):
		Conflict(w, "Worked hours are already logged on this day")
	case errors.Is(err, absence.ErrAbsenceTypeConflict):
		Conflict(w, "The day is already flagged under another absence type")
	case errors.Is(err, absence.ErrForbidden):
		Forbidden(w, "Not allowed to access this absence record")

	// Catalog errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, project.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, project.ErrTaskProjectMismatch):
		BadRequest(w, "Task does not belong to the given project", nil)

	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
