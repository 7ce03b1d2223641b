package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/validation"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/database"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/ident"
)

type weekValidationRepositoryImpl struct {
	db *database.DB
}

func NewWeekValidationRepository(db *database.DB) validation.WeekValidationRepository {
	return &weekValidationRepositoryImpl{db: db}
}

// Upsert implements validation.WeekValidationRepository.
func (r *weekValidationRepositoryImpl) Upsert(ctx context.Context, v validation.WeekValidation) (validation.WeekValidation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO week_validations (
			employee_id, year, week, status, total_hours,
			submitted_at, validated_by, validated_at, rejection_comment
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (employee_id, year, week)
		DO UPDATE SET
			status = EXCLUDED.status,
			total_hours = EXCLUDED.total_hours,
			submitted_at = EXCLUDED.submitted_at,
			validated_by = EXCLUDED.validated_by,
			validated_at = EXCLUDED.validated_at,
			rejection_comment = EXCLUDED.rejection_comment,
			updated_at = NOW()
		RETURNING id, employee_id, year, week, status, total_hours,
			submitted_at, validated_by, validated_at, rejection_comment,
			created_at, updated_at
	`

	var saved validation.WeekValidation
	err := q.QueryRow(ctx, query,
		v.EmployeeID, v.Year, v.Week, v.Status, v.TotalHours,
		v.SubmittedAt, v.ValidatedBy, v.ValidatedAt, v.RejectionComment,
	).Scan(
		&saved.ID,
		&saved.EmployeeID,
		&saved.Year,
		&saved.Week,
		&saved.Status,
		&saved.TotalHours,
		&saved.SubmittedAt,
		&saved.ValidatedBy,
		&saved.ValidatedAt,
		&saved.RejectionComment,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		return validation.WeekValidation{}, fmt.Errorf("failed to upsert week validation: %w", err)
	}
	return saved, nil
}

// GetForWeek implements validation.WeekValidationRepository.
func (r *weekValidationRepositoryImpl) GetForWeek(ctx context.Context, employeeID ident.ID, year, wk int) (validation.WeekValidation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, year, week, status, total_hours,
			submitted_at, validated_by, validated_at, rejection_comment,
			created_at, updated_at
		FROM week_validations
		WHERE employee_id = $1 AND year = $2 AND week = $3
	`

	var v validation.WeekValidation
	err := q.QueryRow(ctx, query, employeeID, year, wk).Scan(
		&v.ID,
		&v.EmployeeID,
		&v.Year,
		&v.Week,
		&v.Status,
		&v.TotalHours,
		&v.SubmittedAt,
		&v.ValidatedBy,
		&v.ValidatedAt,
		&v.RejectionComment,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return validation.WeekValidation{}, validation.ErrNotFound
		}
		return validation.WeekValidation{}, fmt.Errorf("failed to get week validation: %w", err)
	}
	return v, nil
}

// ListSubmitted implements validation.WeekValidationRepository.
func (r *weekValidationRepositoryImpl) ListSubmitted(ctx context.Context) ([]validation.WeekValidation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT wv.id, wv.employee_id, wv.year, wv.week, wv.status, wv.total_hours,
			wv.submitted_at, wv.validated_by, wv.validated_at, wv.rejection_comment,
			wv.created_at, wv.updated_at,
			e.first_name || ' ' || e.last_name AS employee_name
		FROM week_validations wv
		JOIN employees e ON e.id = wv.employee_id
		WHERE wv.status = 'submitted'
		ORDER BY e.last_name, e.first_name, wv.employee_id, wv.year, wv.week
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list submitted weeks: %w", err)
	}
	defer rows.Close()

	pending := make([]validation.WeekValidation, 0)
	for rows.Next() {
		var v validation.WeekValidation
		err := rows.Scan(
			&v.ID,
			&v.EmployeeID,
			&v.Year,
			&v.Week,
			&v.Status,
			&v.TotalHours,
			&v.SubmittedAt,
			&v.ValidatedBy,
			&v.ValidatedAt,
			&v.RejectionComment,
			&v.CreatedAt,
			&v.UpdatedAt,
			&v.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan week validation: %w", err)
		}
		pending = append(pending, v)
	}
	return pending, rows.Err()
}
