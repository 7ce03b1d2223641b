package validation

import (
	"context"

	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/user"
)

type WeekValidationService interface {
	// Submit freezes the computed total and locks the caller's own week.
	Submit(ctx context.Context, caller user.Caller, req SubmitRequest) (WeekValidation, error)

	// Validate approves a submitted week. Manager only.
	Validate(ctx context.Context, caller user.Caller, req DecisionRequest) (WeekValidation, error)

	// Reject sends a submitted week back to its owner with a mandatory
	// comment. Manager only.
	Reject(ctx context.Context, caller user.Caller, req RejectRequest) (WeekValidation, error)

	// Reopen resets a submitted or validated week to draft. Manager only.
	Reopen(ctx context.Context, caller user.Caller, req DecisionRequest) (WeekValidation, error)

	// PendingQueue groups every submitted week by employee for the
	// manager approval view. Read-only.
	PendingQueue(ctx context.Context) ([]EmployeeQueue, error)
}
