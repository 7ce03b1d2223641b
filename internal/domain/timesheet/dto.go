package timesheet

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/holiday"
	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/validation"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/ident"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/validator"
)

// dayFields are the JSON names of the seven day-hour values, Monday first.
var dayFields = [7]string{
	"lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi", "dimanche",
}

// UpsertEntryRequest creates or updates one ledger row. Day-hour fields
// default to zero when omitted.
type UpsertEntryRequest struct {
	EmployeeID ident.ID `json:"salarie_id"`
	ProjectID  ident.ID `json:"projet_id"`
	TaskID     ident.ID `json:"tache_id"`
	Year       int      `json:"annee"`
	Week       int      `json:"semaine"`

	Monday    decimal.Decimal `json:"lundi"`
	Tuesday   decimal.Decimal `json:"mardi"`
	Wednesday decimal.Decimal `json:"mercredi"`
	Thursday  decimal.Decimal `json:"jeudi"`
	Friday    decimal.Decimal `json:"vendredi"`
	Saturday  decimal.Decimal `json:"samedi"`
	Sunday    decimal.Decimal `json:"dimanche"`

	Comment *string `json:"commentaire,omitempty"`
}

// DayHours returns the seven values Monday first.
func (r *UpsertEntryRequest) DayHours() [7]decimal.Decimal {
	return [7]decimal.Decimal{
		r.Monday, r.Tuesday, r.Wednesday, r.Thursday,
		r.Friday, r.Saturday, r.Sunday,
	}
}

func (r *UpsertEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ProjectID.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "projet_id",
			Message: "projet_id is required",
		})
	}
	if r.TaskID.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "tache_id",
			Message: "tache_id is required",
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
	for i, h := range r.DayHours() {
		if !validator.IsValidDayHours(h) {
			errs = append(errs, validator.ValidationError{
				Field:   dayFields[i],
				Message: "day hours must be between 0 and 24",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Filter narrows the ledger list. Non-manager callers are forced onto
// their own employee id by the service.
type Filter struct {
	EmployeeID *ident.ID
	ProjectID  *ident.ID
	Year       *int
	Week       *int
	Status     *string
	Page       int
	Limit      int
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.Year != nil && !validator.IsValidYear(*f.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "annee",
			Message: "year is out of range",
		})
	}
	if f.Week != nil && !validator.IsValidWeekNumber(*f.Week) {
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

// HourEntryResponse is the API shape of one ledger row.
type HourEntryResponse struct {
	ID         ident.ID `json:"id"`
	EmployeeID ident.ID `json:"salarie_id"`
	ProjectID  ident.ID `json:"projet_id"`
	TaskID     ident.ID `json:"tache_id"`
	Year       int      `json:"annee"`
	Week       int      `json:"semaine"`

	Monday    string `json:"lundi"`
	Tuesday   string `json:"mardi"`
	Wednesday string `json:"mercredi"`
	Thursday  string `json:"jeudi"`
	Friday    string `json:"vendredi"`
	Saturday  string `json:"samedi"`
	Sunday    string `json:"dimanche"`
	Total     string `json:"total"`

	Comment     *string `json:"commentaire,omitempty"`
	Status      string  `json:"status"`
	ProjectName *string `json:"projet_nom,omitempty"`
	TaskName    *string `json:"tache_nom,omitempty"`
}

func (e HourEntry) ToResponse() HourEntryResponse {
	return HourEntryResponse{
		ID:          e.ID,
		EmployeeID:  e.EmployeeID,
		ProjectID:   e.ProjectID,
		TaskID:      e.TaskID,
		Year:        e.Year,
		Week:        e.Week,
		Monday:      e.Hours[0].StringFixed(1),
		Tuesday:     e.Hours[1].StringFixed(1),
		Wednesday:   e.Hours[2].StringFixed(1),
		Thursday:    e.Hours[3].StringFixed(1),
		Friday:      e.Hours[4].StringFixed(1),
		Saturday:    e.Hours[5].StringFixed(1),
		Sunday:      e.Hours[6].StringFixed(1),
		Total:       e.Total().StringFixed(1),
		Comment:     e.Comment,
		Status:      e.Status,
		ProjectName: e.ProjectName,
		TaskName:    e.TaskName,
	}
}

// ListResponse carries one page of ledger rows.
type ListResponse struct {
	Entries []HourEntryResponse `json:"pointages"`
	Total   int64               `json:"total"`
	Page    int                 `json:"page"`
	Limit   int                 `json:"limit"`
}

// WeekView is the employee's own weekly view: ledger rows, the owning
// validation record, applicable holidays and the resolved week dates.
type WeekView struct {
	Year        int                                `json:"annee"`
	Week        int                                `json:"semaine"`
	Monday      time.Time                          `json:"lundi"`
	Sunday      time.Time                          `json:"dimanche"`
	Entries     []HourEntryResponse                `json:"pointages"`
	DailyTotals [7]string                          `json:"totaux_journaliers"`
	Validation  *validation.WeekValidationResponse `json:"validation,omitempty"`
	Holidays    []holiday.Holiday                  `json:"jours_feries"`
}
