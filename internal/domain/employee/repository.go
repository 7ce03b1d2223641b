package employee

import (
	"context"

	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/ident"
)

type EmployeeRepository interface {
	GetByID(ctx context.Context, id ident.ID) (Employee, error)
	GetByUserID(ctx context.Context, userID ident.ID) (Employee, error)
}
