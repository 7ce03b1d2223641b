package validation

import (
	"strings"

	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/accounting"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/ident"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/validator"
)

// SubmitRequest submits the caller's own week.
type SubmitRequest struct {
	Year int `json:"annee"`
	Week int `json:"semaine"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "annee",
			Message: "year is out of range",
		})
	}
	if !validator.IsValidWeekNumber(r.Week) {
		errs = append(errs, validator.ValidationError{
			Field:   "semaine",
			Message: "week must be between 1 and 53",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DecisionRequest targets another employee's submitted week (validate,
// reopen).
type DecisionRequest struct {
	EmployeeID ident.ID `json:"salarie_id"`
	Year       int      `json:"annee"`
	Week       int      `json:"semaine"`
}

func (r *DecisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "salarie_id",
			Message: "salarie_id is required",
		})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "annee",
			Message: "year is out of range",
		})
	}
	if !validator.IsValidWeekNumber(r.Week) {
		errs = append(errs, validator.ValidationError{
			Field:   "semaine",
			Message: "week must be between 1 and 53",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RejectRequest carries the mandatory rejection rationale.
type RejectRequest struct {
	EmployeeID ident.ID `json:"salarie_id"`
	Year       int      `json:"annee"`
	Week       int      `json:"semaine"`
	Comment    string   `json:"commentaire"`
}

func (r *RejectRequest) Validate() error {
	base := DecisionRequest{EmployeeID: r.EmployeeID, Year: r.Year, Week: r.Week}
	if err := base.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(r.Comment) == "" {
		return ErrMissingComment
	}
	return nil
}

// WeekCard is one pending week in the manager queue.
type WeekCard struct {
	Year        int                    `json:"annee"`
	Week        int                    `json:"semaine"`
	SubmittedAt *string                `json:"soumis_le,omitempty"`
	FrozenTotal string                 `json:"total_fige"`
	Totals      accounting.WeeklyTotals `json:"totaux"`
}

// EmployeeQueue groups every week awaiting action for one employee,
// with the cross-week sum of the independently computed per-week totals.
type EmployeeQueue struct {
	EmployeeID   ident.ID                `json:"salarie_id"`
	EmployeeName string                  `json:"salarie_nom"`
	Weeks        []WeekCard              `json:"semaines"`
	Totals       accounting.WeeklyTotals `json:"totaux"`
}

// WeekValidationResponse is the API shape of one lifecycle record.
type WeekValidationResponse struct {
	ID               ident.ID `json:"id"`
	EmployeeID       ident.ID `json:"salarie_id"`
	Year             int      `json:"annee"`
	Week             int      `json:"semaine"`
	Status           Status   `json:"status"`
	TotalHours       string   `json:"total_heures"`
	SubmittedAt      *string  `json:"soumis_le,omitempty"`
	ValidatedBy      *ident.ID `json:"valide_par,omitempty"`
	ValidatedAt      *string  `json:"valide_le,omitempty"`
	RejectionComment *string  `json:"commentaire_rejet,omitempty"`
}

// ToResponse converts the entity to its API shape. Timestamps use RFC 3339,
// hours use fixed one-decimal rendering (the UI convention).
func (v WeekValidation) ToResponse() WeekValidationResponse {
	resp := WeekValidationResponse{
		ID:               v.ID,
		EmployeeID:       v.EmployeeID,
		Year:             v.Year,
		Week:             v.Week,
		Status:           v.Status,
		TotalHours:       v.TotalHours.StringFixed(1),
		ValidatedBy:      v.ValidatedBy,
		RejectionComment: v.RejectionComment,
	}
	if v.SubmittedAt != nil {
		s := v.SubmittedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
		resp.SubmittedAt = &s
	}
	if v.ValidatedAt != nil {
		s := v.ValidatedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
		resp.ValidatedAt = &s
	}
	return resp
}
