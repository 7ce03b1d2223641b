package absence

import (
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/ident"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/validator"
)

// SetAbsenceRequest creates or updates the record for one
// (employee, year, week, type).
type SetAbsenceRequest struct {
	EmployeeID ident.ID `json:"salarie_id"`
	Year       int      `json:"annee"`
	Week       int      `json:"semaine"`
	Type       string   `json:"type"`

	Monday    bool `json:"lundi"`
	Tuesday   bool `json:"mardi"`
	Wednesday bool `json:"mercredi"`
	Thursday  bool `json:"jeudi"`
	Friday    bool `json:"vendredi"`

	Reason *string `json:"motif,omitempty"`
}

// DayFlags returns the weekday flags, Monday first.
func (r *SetAbsenceRequest) DayFlags() [5]bool {
	return [5]bool{r.Monday, r.Tuesday, r.Wednesday, r.Thursday, r.Friday}
}

func (r *SetAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, err := ParseType(r.Type); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of paid_leave, sick, off_site, unpaid, other",
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

// Filter narrows the absence list.
type Filter struct {
	EmployeeID *ident.ID
	Year       *int
	Week       *int
	Type       *Type
	Status     *string
	Page       int
	Limit      int
}

// AbsenceResponse is the API shape of one record.
type AbsenceResponse struct {
	ID         ident.ID `json:"id"`
	EmployeeID ident.ID `json:"salarie_id"`
	Year       int      `json:"annee"`
	Week       int      `json:"semaine"`
	Type       Type     `json:"type"`
	TypeLabel  string   `json:"type_libelle"`

	Monday    bool `json:"lundi"`
	Tuesday   bool `json:"mardi"`
	Wednesday bool `json:"mercredi"`
	Thursday  bool `json:"jeudi"`
	Friday    bool `json:"vendredi"`

	DaysCount int     `json:"nb_jours"`
	Hours     string  `json:"heures"`
	Reason    *string `json:"motif,omitempty"`
	Status    string  `json:"status"`
}

func (r AbsenceRecord) ToResponse() AbsenceResponse {
	return AbsenceResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Year:       r.Year,
		Week:       r.Week,
		Type:       r.Type,
		TypeLabel:  r.Type.Label(),
		Monday:     r.Days[0],
		Tuesday:    r.Days[1],
		Wednesday:  r.Days[2],
		Thursday:   r.Days[3],
		Friday:     r.Days[4],
		DaysCount:  r.DaysCount(),
		Hours:      r.AccountingDays().Hours().StringFixed(1),
		Reason:     r.Reason,
		Status:     r.Status,
	}
}

// ListResponse carries one page of absence records.
type ListResponse struct {
	Absences []AbsenceResponse `json:"conges"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}
