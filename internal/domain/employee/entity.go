// Package employee is the read-only surface over the employee roster.
// Roster management lives outside this service; the timesheet core only
// needs names for the validation queue and identities for ownership checks.
package employee

import (
	"time"

	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/ident"
)

type Employee struct {
	ID        ident.ID
	UserID    ident.ID
	FirstName string
	LastName  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
