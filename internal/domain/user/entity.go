package user

import (
	"time"

	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/ident"
)

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, may validate any week
	RoleManager  Role = "manager"  // May validate/reject submitted weeks
	RoleEmployee Role = "employee" // Records hours and absences for themselves
)

type User struct {
	ID           ident.ID
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	EmployeeID ident.ID
}

// Caller is the authenticated identity extracted from the access token.
type Caller struct {
	UserID     ident.ID
	EmployeeID ident.ID
	Role       Role
}

// IsManager reports whether the caller may act on other employees' weeks.
func (c Caller) IsManager() bool {
	return c.Role == RoleManager || c.Role == RoleAdmin
}

// CanActFor reports whether the caller may touch data owned by employeeID.
func (c Caller) CanActFor(employeeID ident.ID) bool {
	return c.IsManager() || c.EmployeeID == employeeID
}
