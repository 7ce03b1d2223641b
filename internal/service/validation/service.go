package validation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/absence"
	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/accounting"
	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/holiday"
	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/timesheet"
	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/user"
	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/validation"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/database"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/ident"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/week"
	"github.com/timeflow-hr/timeflow-backend-go/internal/repository/postgresql"
)

type Service struct {
	db          *database.DB
	validations validation.WeekValidationRepository
	entries     timesheet.TimesheetRepository
	absences    absence.AbsenceRepository
	holidays    holiday.HolidayRepository
}

func NewWeekValidationService(
	db *database.DB,
	validations validation.WeekValidationRepository,
	entries timesheet.TimesheetRepository,
	absences absence.AbsenceRepository,
	holidays holiday.HolidayRepository,
) *Service {
	return &Service{
		db:          db,
		validations: validations,
		entries:     entries,
		absences:    absences,
		holidays:    holidays,
	}
}

// weekTotals recomputes the accounting figures for one week from the raw
// rows. Used both to freeze the total at submission and to build the
// manager queue.
func (s *Service) weekTotals(ctx context.Context, employeeID ident.ID, year, wk int) (accounting.WeeklyTotals, int, error) {
	days, err := week.Days(year, wk)
	if err != nil {
		return accounting.WeeklyTotals{}, 0, err
	}

	entries, err := s.entries.ListForWeek(ctx, employeeID, year, wk)
	if err != nil {
		return accounting.WeeklyTotals{}, 0, fmt.Errorf("failed to list hour entries: %w", err)
	}
	records, err := s.absences.ListForWeek(ctx, employeeID, year, wk)
	if err != nil {
		return accounting.WeeklyTotals{}, 0, fmt.Errorf("failed to list absences: %w", err)
	}
	holidays, err := s.holidays.ListBetween(ctx, days[0], days[6])
	if err != nil {
		return accounting.WeeklyTotals{}, 0, fmt.Errorf("failed to list holidays: %w", err)
	}

	dayHours := make([]accounting.DayHours, 0, len(entries))
	for _, e := range entries {
		dayHours = append(dayHours, e.Hours)
	}

	flaggedDays := 0
	for _, r := range records {
		flaggedDays += r.DaysCount()
	}

	totals := accounting.ComputeWeekTotals(dayHours, absence.AccountingView(records), accounting.Inputs{
		HolidayWeekdays: holiday.WeekdayCount(holidays),
	})
	return totals, flaggedDays, nil
}

// transition writes the validation record and re-syncs the status mirrors
// on hour entries and absences in one transaction.
func (s *Service) transition(ctx context.Context, v validation.WeekValidation) (validation.WeekValidation, error) {
	var saved validation.WeekValidation
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		saved, err = s.validations.Upsert(txCtx, v)
		if err != nil {
			return fmt.Errorf("failed to upsert week validation: %w", err)
		}
		if err := s.entries.SetStatusForWeek(txCtx, v.EmployeeID, v.Year, v.Week, string(v.Status)); err != nil {
			return fmt.Errorf("failed to sync hour entry status: %w", err)
		}
		if err := s.absences.SetStatusForWeek(txCtx, v.EmployeeID, v.Year, v.Week, string(v.Status)); err != nil {
			return fmt.Errorf("failed to sync absence status: %w", err)
		}
		return nil
	})
	if err != nil {
		return validation.WeekValidation{}, err
	}
	return saved, nil
}

// Submit implements validation.WeekValidationService.
func (s *Service) Submit(ctx context.Context, caller user.Caller, req validation.SubmitRequest) (validation.WeekValidation, error) {
	employeeID := caller.EmployeeID

	current, err := s.validations.GetForWeek(ctx, employeeID, req.Year, req.Week)
	switch {
	case err == nil:
		if current.Status == validation.StatusSubmitted {
			return validation.WeekValidation{}, validation.ErrAlreadySubmitted
		}
		if current.Status == validation.StatusValidated {
			return validation.WeekValidation{}, validation.ErrAlreadyValidated
		}
	case errors.Is(err, validation.ErrNotFound):
		current = validation.WeekValidation{
			EmployeeID: employeeID,
			Year:       req.Year,
			Week:       req.Week,
		}
	default:
		return validation.WeekValidation{}, fmt.Errorf("failed to get week validation: %w", err)
	}

	totals, flaggedDays, err := s.weekTotals(ctx, employeeID, req.Year, req.Week)
	if err != nil {
		return validation.WeekValidation{}, err
	}
	// Rows alone do not make a week submittable; the computed total must
	// be non-zero, or at least one day flagged absent.
	if !totals.Total.IsPositive() && flaggedDays == 0 {
		return validation.WeekValidation{}, validation.ErrEmptyWeek
	}

	now := time.Now()
	current.Status = validation.StatusSubmitted
	current.TotalHours = totals.Total
	current.SubmittedAt = &now
	current.ValidatedBy = nil
	current.ValidatedAt = nil
	current.RejectionComment = nil

	return s.transition(ctx, current)
}

// Validate implements validation.WeekValidationService.
func (s *Service) Validate(ctx context.Context, caller user.Caller, req validation.DecisionRequest) (validation.WeekValidation, error) {
	if !caller.IsManager() {
		return validation.WeekValidation{}, validation.ErrForbidden
	}

	current, err := s.getSubmitted(ctx, req.EmployeeID, req.Year, req.Week)
	if err != nil {
		return validation.WeekValidation{}, err
	}

	now := time.Now()
	validatedBy := caller.EmployeeID
	current.Status = validation.StatusValidated
	current.ValidatedBy = &validatedBy
	current.ValidatedAt = &now
	current.RejectionComment = nil

	return s.transition(ctx, current)
}

// Reject implements validation.WeekValidationService.
func (s *Service) Reject(ctx context.Context, caller user.Caller, req validation.RejectRequest) (validation.WeekValidation, error) {
	if !caller.IsManager() {
		return validation.WeekValidation{}, validation.ErrForbidden
	}

	current, err := s.getSubmitted(ctx, req.EmployeeID, req.Year, req.Week)
	if err != nil {
		return validation.WeekValidation{}, err
	}

	comment := req.Comment
	current.Status = validation.StatusRejected
	current.ValidatedBy = nil
	current.ValidatedAt = nil
	current.RejectionComment = &comment

	return s.transition(ctx, current)
}

// Reopen implements validation.WeekValidationService.
func (s *Service) Reopen(ctx context.Context, caller user.Caller, req validation.DecisionRequest) (validation.WeekValidation, error) {
	if !caller.IsManager() {
		return validation.WeekValidation{}, validation.ErrForbidden
	}

	current, err := s.validations.GetForWeek(ctx, req.EmployeeID, req.Year, req.Week)
	if err != nil {
		if errors.Is(err, validation.ErrNotFound) {
			return validation.WeekValidation{}, validation.ErrNotFound
		}
		return validation.WeekValidation{}, fmt.Errorf("failed to get week validation: %w", err)
	}
	if !current.Status.Locked() {
		return validation.WeekValidation{}, validation.ErrNotSubmitted
	}

	current.Status = validation.StatusDraft
	current.TotalHours = decimal.Zero
	current.SubmittedAt = nil
	current.ValidatedBy = nil
	current.ValidatedAt = nil
	current.RejectionComment = nil

	return s.transition(ctx, current)
}

func (s *Service) getSubmitted(ctx context.Context, employeeID ident.ID, year, wk int) (validation.WeekValidation, error) {
	current, err := s.validations.GetForWeek(ctx, employeeID, year, wk)
	if err != nil {
		if errors.Is(err, validation.ErrNotFound) {
			return validation.WeekValidation{}, validation.ErrNotSubmitted
		}
		return validation.WeekValidation{}, fmt.Errorf("failed to get week validation: %w", err)
	}
	switch current.Status {
	case validation.StatusSubmitted:
		return current, nil
	case validation.StatusValidated:
		return validation.WeekValidation{}, validation.ErrAlreadyValidated
	default:
		return validation.WeekValidation{}, validation.ErrNotSubmitted
	}
}

// PendingQueue implements validation.WeekValidationService.
func (s *Service) PendingQueue(ctx context.Context) ([]validation.EmployeeQueue, error) {
	pending, err := s.validations.ListSubmitted(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list submitted weeks: %w", err)
	}

	queue := make([]validation.EmployeeQueue, 0)
	index := make(map[ident.ID]int)
	perEmployee := make(map[ident.ID][]accounting.WeeklyTotals)

	for _, v := range pending {
		totals, _, err := s.weekTotals(ctx, v.EmployeeID, v.Year, v.Week)
		if err != nil {
			return nil, err
		}

		card := validation.WeekCard{
			Year:        v.Year,
			Week:        v.Week,
			FrozenTotal: v.TotalHours.StringFixed(1),
			Totals:      totals,
		}
		if v.SubmittedAt != nil {
			ts := v.SubmittedAt.UTC().Format(time.RFC3339)
			card.SubmittedAt = &ts
		}

		i, ok := index[v.EmployeeID]
		if !ok {
			name := ""
			if v.EmployeeName != nil {
				name = *v.EmployeeName
			}
			queue = append(queue, validation.EmployeeQueue{
				EmployeeID:   v.EmployeeID,
				EmployeeName: name,
				Weeks:        make([]validation.WeekCard, 0, 1),
			})
			i = len(queue) - 1
			index[v.EmployeeID] = i
		}
		queue[i].Weeks = append(queue[i].Weeks, card)
		perEmployee[v.EmployeeID] = append(perEmployee[v.EmployeeID], totals)
	}

	// Cross-week figures are sums of per-week results, never a recompute
	// over merged raw rows.
	for i := range queue {
		queue[i].Totals = accounting.SumTotals(perEmployee[queue[i].EmployeeID])
	}
	return queue, nil
}
