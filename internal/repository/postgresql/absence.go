package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/absence"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/database"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/ident"
)

type absenceRepositoryImpl struct {
	db *database.DB
}

func NewAbsenceRepository(db *database.DB) absence.AbsenceRepository {
	return &absenceRepositoryImpl{db: db}
}

const absenceColumns = `
	id, employee_id, year, week, type,
	monday, tuesday, wednesday, thursday, friday,
	reason, status, created_at, updated_at
`

func scanAbsence(row pgx.Row) (absence.AbsenceRecord, error) {
	var a absence.AbsenceRecord
	err := row.Scan(
		&a.ID,
		&a.EmployeeID,
		&a.Year,
		&a.Week,
		&a.Type,
		&a.Days[0],
		&a.Days[1],
		&a.Days[2],
		&a.Days[3],
		&a.Days[4],
		&a.Reason,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

// Upsert implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) Upsert(ctx context.Context, record absence.AbsenceRecord) (absence.AbsenceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO absences (
			employee_id, year, week, type,
			monday, tuesday, wednesday, thursday, friday,
			reason, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (employee_id, year, week, type)
		DO UPDATE SET
			monday = EXCLUDED.monday,
			tuesday = EXCLUDED.tuesday,
			wednesday = EXCLUDED.wednesday,
			thursday = EXCLUDED.thursday,
			friday = EXCLUDED.friday,
			reason = EXCLUDED.reason,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING ` + absenceColumns

	a, err := scanAbsence(q.QueryRow(ctx, query,
		record.EmployeeID, record.Year, record.Week, record.Type,
		record.Days[0], record.Days[1], record.Days[2], record.Days[3], record.Days[4],
		record.Reason, record.Status,
	))
	if err != nil {
		return absence.AbsenceRecord{}, fmt.Errorf("failed to upsert absence: %w", err)
	}
	return a, nil
}

// GetByID implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) GetByID(ctx context.Context, id ident.ID) (absence.AbsenceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + absenceColumns + ` FROM absences WHERE id = $1`

	a, err := scanAbsence(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.AbsenceRecord{}, absence.ErrAbsenceNotFound
		}
		return absence.AbsenceRecord{}, fmt.Errorf("failed to get absence: %w", err)
	}
	return a, nil
}

// Delete implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) Delete(ctx context.Context, id ident.ID) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM absences WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete absence: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return absence.ErrAbsenceNotFound
	}
	return nil
}

// ListForWeek implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) ListForWeek(ctx context.Context, employeeID ident.ID, year, wk int) ([]absence.AbsenceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + absenceColumns + `
		FROM absences
		WHERE employee_id = $1 AND year = $2 AND week = $3
		ORDER BY type
	`

	rows, err := q.Query(ctx, query, employeeID, year, wk)
	if err != nil {
		return nil, fmt.Errorf("failed to list absences: %w", err)
	}
	defer rows.Close()

	records := make([]absence.AbsenceRecord, 0)
	for rows.Next() {
		a, err := scanAbsence(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan absence: %w", err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// List implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) List(ctx context.Context, filter absence.Filter) ([]absence.AbsenceRecord, int64, error) {
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
		add("employee_id = $%d", *filter.EmployeeID)
	}
	if filter.Year != nil {
		add("year = $%d", *filter.Year)
	}
	if filter.Week != nil {
		add("week = $%d", *filter.Week)
	}
	if filter.Type != nil {
		add("type = $%d", *filter.Type)
	}
	if filter.Status != nil {
		add("status = $%d", *filter.Status)
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM absences WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count absences: %w", err)
	}

	query := `
		SELECT ` + absenceColumns + `
		FROM absences
		WHERE ` + where + `
		ORDER BY year DESC, week DESC, type
		LIMIT $` + fmt.Sprint(idx) + ` OFFSET $` + fmt.Sprint(idx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list absences: %w", err)
	}
	defer rows.Close()

	records := make([]absence.AbsenceRecord, 0)
	for rows.Next() {
		a, err := scanAbsence(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan absence: %w", err)
		}
		records = append(records, a)
	}
	return records, total, rows.Err()
}

// SetStatusForWeek implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) SetStatusForWeek(ctx context.Context, employeeID ident.ID, year, wk int, status string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE absences
		SET status = $1, updated_at = NOW()
		WHERE employee_id = $2 AND year = $3 AND week = $4
	`

	if _, err := q.Exec(ctx, query, status, employeeID, year, wk); err != nil {
		return fmt.Errorf("failed to set absence status: %w", err)
	}
	return nil
}
