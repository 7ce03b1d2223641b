// Package project is the read-only surface over the project/task catalog.
package project

import (
	"time"

	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/ident"
)

type Project struct {
	ID        ident.ID
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Task struct {
	ID        ident.ID
	ProjectID ident.ID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	ProjectName string
}
