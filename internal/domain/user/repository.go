package user

import (
	"context"

	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/ident"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id ident.ID) (User, error)
}
