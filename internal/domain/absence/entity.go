package absence

import (
	"fmt"
	"time"

	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/accounting"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/ident"
)

// Type is the closed set of absence categories. Adding a category means
// touching every switch below; the compiler keeps dispatch exhaustive
// instead of a runtime default branch.
type Type string

const (
	TypePaidLeave Type = "paid_leave"
	TypeSick      Type = "sick"
	TypeOffSite   Type = "off_site"
	TypeUnpaid    Type = "unpaid"
	TypeOther     Type = "other"
)

// Types lists every category, in display order.
func Types() []Type {
	return []Type{TypePaidLeave, TypeSick, TypeOffSite, TypeUnpaid, TypeOther}
}

// ParseType validates a wire value against the closed set.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypePaidLeave, TypeSick, TypeOffSite, TypeUnpaid, TypeOther:
		return Type(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// CountsAsWorked reports whether the category fills the weekly total as if
// the hours were worked. Off-site/travel days count as worked time.
func (t Type) CountsAsWorked() bool {
	switch t {
	case TypePaidLeave, TypeOffSite:
		return true
	case TypeSick, TypeUnpaid, TypeOther:
		return false
	}
	return false
}

// GeneratesOwed reports whether flagged days add to the owed-hours deficit.
func (t Type) GeneratesOwed() bool {
	switch t {
	case TypeSick:
		return true
	case TypePaidLeave, TypeOffSite, TypeUnpaid, TypeOther:
		return false
	}
	return false
}

// Label is the display name for the category.
func (t Type) Label() string {
	switch t {
	case TypePaidLeave:
		return "Congés payés"
	case TypeSick:
		return "Maladie"
	case TypeOffSite:
		return "Déplacement"
	case TypeUnpaid:
		return "Congés sans solde"
	case TypeOther:
		return "Autre"
	}
	return string(t)
}

// AbsenceRecord flags weekdays of one week under one category for one
// employee. Identity is (employee_id, year, week, type); weekends are
// excluded from absence accounting.
type AbsenceRecord struct {
	ID         ident.ID
	EmployeeID ident.ID
	Year       int
	Week       int
	Type       Type

	// Days holds Monday..Friday flags.
	Days [5]bool

	Reason *string

	// Status mirrors the owning week validation.
	Status string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DaysCount returns the number of flagged weekdays.
func (r AbsenceRecord) DaysCount() int {
	count := 0
	for _, flagged := range r.Days {
		if flagged {
			count++
		}
	}
	return count
}

// AccountingDays converts the record into the calculator's input view.
func (r AbsenceRecord) AccountingDays() accounting.AbsenceDays {
	return accounting.AbsenceDays{
		Days:    r.DaysCount(),
		Payable: r.Type.CountsAsWorked(),
		Owed:    r.Type.GeneratesOwed(),
	}
}

// AccountingView converts a set of records for the calculator.
func AccountingView(records []AbsenceRecord) []accounting.AbsenceDays {
	out := make([]accounting.AbsenceDays, 0, len(records))
	for _, r := range records {
		out = append(out, r.AccountingDays())
	}
	return out
}
