package validation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/ident"
)

// Status is the lifecycle of one (employee, year, week).
// Draft -> Submitted -> {Validated, Rejected}; Rejected re-enters Submitted
// on resubmit; Validated is terminal except for a manager reopen.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusValidated Status = "validated"
	StatusRejected  Status = "rejected"
)

// Locked reports whether hour entries and absences for the week reject
// mutation by their owner.
func (s Status) Locked() bool {
	return s == StatusSubmitted || s == StatusValidated
}

// WeekValidation is the single source of truth for a week's lock state.
// Status mirrors on hour entries and absences are derived from it.
type WeekValidation struct {
	ID         ident.ID
	EmployeeID ident.ID
	Year       int
	Week       int
	Status     Status

	// TotalHours is frozen at submission time; later edits (only possible
	// after a reject or reopen) produce a fresh snapshot on resubmit.
	TotalHours decimal.Decimal

	SubmittedAt      *time.Time
	ValidatedBy      *ident.ID
	ValidatedAt      *time.Time
	RejectionComment *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	EmployeeName *string
}
