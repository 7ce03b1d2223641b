package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/project"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/database"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/ident"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

// GetTask implements project.ProjectRepository.
func (r *projectRepositoryImpl) GetTask(ctx context.Context, taskID ident.ID) (project.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.project_id, t.name, t.created_at, t.updated_at, p.name
		FROM tasks t
		JOIN projects p ON p.id = t.project_id
		WHERE t.id = $1
	`

	var t project.Task
	err := q.QueryRow(ctx, query, taskID).Scan(
		&t.ID,
		&t.ProjectID,
		&t.Name,
		&t.CreatedAt,
		&t.UpdatedAt,
		&t.ProjectName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Task{}, project.ErrTaskNotFound
		}
		return project.Task{}, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}
