package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/timesheet"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/database"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/ident"
)

type hourEntryRepositoryImpl struct {
	db *database.DB
}

func NewHourEntryRepository(db *database.DB) timesheet.TimesheetRepository {
	return &hourEntryRepositoryImpl{db: db}
}

const hourEntryColumns = `
	he.id, he.employee_id, he.project_id, he.task_id, he.year, he.week,
	he.monday, he.tuesday, he.wednesday, he.thursday, he.friday, he.saturday, he.sunday,
	he.comment, he.status, he.created_at, he.updated_at,
	p.name AS project_name, t.name AS task_name
`

func scanHourEntry(row pgx.Row) (timesheet.HourEntry, error) {
	var e timesheet.HourEntry
	err := row.Scan(
		&e.ID,
		&e.EmployeeID,
		&e.ProjectID,
		&e.TaskID,
		&e.Year,
		&e.Week,
		&e.Hours[0],
		&e.Hours[1],
		&e.Hours[2],
		&e.Hours[3],
		&e.Hours[4],
		&e.Hours[5],
		&e.Hours[6],
		&e.Comment,
		&e.Status,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.ProjectName,
		&e.TaskName,
	)
	return e, err
}

// Upsert implements timesheet.TimesheetRepository.
func (r *hourEntryRepositoryImpl) Upsert(ctx context.Context, entry timesheet.HourEntry) (timesheet.HourEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH upserted AS (
			INSERT INTO hour_entries (
				employee_id, project_id, task_id, year, week,
				monday, tuesday, wednesday, thursday, friday, saturday, sunday,
				comment, status
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			ON CONFLICT (employee_id, project_id, task_id, year, week)
			DO UPDATE SET
				monday = EXCLUDED.monday,
				tuesday = EXCLUDED.tuesday,
				wednesday = EXCLUDED.wednesday,
				thursday = EXCLUDED.thursday,
				friday = EXCLUDED.friday,
				saturday = EXCLUDED.saturday,
				sunday = EXCLUDED.sunday,
				comment = EXCLUDED.comment,
				status = EXCLUDED.status,
				updated_at = NOW()
			RETURNING *
		)
		SELECT ` + hourEntryColumns + `
		FROM upserted he
		JOIN projects p ON p.id = he.project_id
		JOIN tasks t ON t.id = he.task_id
	`

	e, err := scanHourEntry(q.QueryRow(ctx, query,
		entry.EmployeeID, entry.ProjectID, entry.TaskID, entry.Year, entry.Week,
		entry.Hours[0], entry.Hours[1], entry.Hours[2], entry.Hours[3],
		entry.Hours[4], entry.Hours[5], entry.Hours[6],
		entry.Comment, entry.Status,
	))
	if err != nil {
		return timesheet.HourEntry{}, fmt.Errorf("failed to upsert hour entry: %w", err)
	}
	return e, nil
}

// GetByID implements timesheet.TimesheetRepository.
func (r *hourEntryRepositoryImpl) GetByID(ctx context.Context, id ident.ID) (timesheet.HourEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + hourEntryColumns + `
		FROM hour_entries he
		JOIN projects p ON p.id = he.project_id
		JOIN tasks t ON t.id = he.task_id
		WHERE he.id = $1
	`

	e, err := scanHourEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.HourEntry{}, timesheet.ErrEntryNotFound
		}
		return timesheet.HourEntry{}, fmt.Errorf("failed to get hour entry: %w", err)
	}
	return e, nil
}

// Delete implements timesheet.TimesheetRepository.
func (r *hourEntryRepositoryImpl) Delete(ctx context.Context, id ident.ID) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM hour_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete hour entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrEntryNotFound
	}
	return nil
}

// ListForWeek implements timesheet.TimesheetRepository.
func (r *hourEntryRepositoryImpl) ListForWeek(ctx context.Context, employeeID ident.ID, year, wk int) ([]timesheet.HourEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + hourEntryColumns + `
		FROM hour_entries he
		JOIN projects p ON p.id = he.project_id
		JOIN tasks t ON t.id = he.task_id
		WHERE he.employee_id = $1 AND he.year = $2 AND he.week = $3
		ORDER BY p.name, t.name, he.id
	`

	rows, err := q.Query(ctx, query, employeeID, year, wk)
	if err != nil {
		return nil, fmt.Errorf("failed to list hour entries: %w", err)
	}
	defer rows.Close()

	entries := make([]timesheet.HourEntry, 0)
	for rows.Next() {
		e, err := scanHourEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hour entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// List implements timesheet.TimesheetRepository.
func (r *hourEntryRepositoryImpl) List(ctx context.Context, filter timesheet.Filter) ([]timesheet.HourEntry, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	idx := 1

	add := func(cond string, value any) {
		conditions = append(conditions, fmt.Sprintf(cond, idx))
		args = append(args, value)
		idx++
	}

	if filter.EmployeeID != nil {
		add("he.employee_id = $%d", *filter.EmployeeID)
	}
	if filter.ProjectID != nil {
		add("he.project_id = $%d", *filter.ProjectID)
	}
	if filter.Year != nil {
		add("he.year = $%d", *filter.Year)
	}
	if filter.Week != nil {
		add("he.week = $%d", *filter.Week)
	}
	if filter.Status != nil {
		add("he.status = $%d", *filter.Status)
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM hour_entries he WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count hour entries: %w", err)
	}

	query := `
		SELECT ` + hourEntryColumns + `
		FROM hour_entries he
		JOIN projects p ON p.id = he.project_id
		JOIN tasks t ON t.id = he.task_id
		WHERE ` + where + `
		ORDER BY he.year DESC, he.week DESC, p.name, t.name, he.id
		LIMIT $` + fmt.Sprint(idx) + ` OFFSET $` + fmt.Sprint(idx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list hour entries: %w", err)
	}
	defer rows.Close()

	entries := make([]timesheet.HourEntry, 0)
	for rows.Next() {
		e, err := scanHourEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan hour entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, total, rows.Err()
}

// SetStatusForWeek implements timesheet.TimesheetRepository.
func (r *hourEntryRepositoryImpl) SetStatusForWeek(ctx context.Context, employeeID ident.ID, year, wk int, status string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE hour_entries
		SET status = $1, updated_at = NOW()
		WHERE employee_id = $2 AND year = $3 AND week = $4
	`

	if _, err := q.Exec(ctx, query, status, employeeID, year, wk); err != nil {
		return fmt.Errorf("failed to set hour entry status: %w", err)
	}
	return nil
}
