package project

import (
	"context"

	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/ident"
)

type ProjectRepository interface {
	GetTask(ctx context.Context, taskID ident.ID) (Task, error)
}
