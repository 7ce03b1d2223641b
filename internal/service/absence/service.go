package absence

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/absence"
	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/accounting"
	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/holiday"
	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/timesheet"
	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/user"
	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/validation"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/ident"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/week"
)

type Service struct {
	absences    absence.AbsenceRepository
	entries     timesheet.TimesheetRepository
	validations validation.WeekValidationRepository
	holidays    holiday.HolidayRepository
}

func NewAbsenceService(
	absences absence.AbsenceRepository,
	entries timesheet.TimesheetRepository,
	validations validation.WeekValidationRepository,
	holidays holiday.HolidayRepository,
) *Service {
	return &Service{
		absences:    absences,
		entries:     entries,
		validations: validations,
		holidays:    holidays,
	}
}

func (s *Service) weekStatus(ctx context.Context, employeeID ident.ID, year, wk int) (validation.Status, error) {
	v, err := s.validations.GetForWeek(ctx, employeeID, year, wk)
	if err != nil {
		if errors.Is(err, validation.ErrNotFound) {
			return validation.StatusDraft, nil
		}
		return "", fmt.Errorf("failed to get week validation: %w", err)
	}
	return v.Status, nil
}

// Set implements absence.AbsenceService.
func (s *Service) Set(ctx context.Context, caller user.Caller, req absence.SetAbsenceRequest) (absence.AbsenceRecord, error) {
	employeeID := req.EmployeeID
	if employeeID.IsZero() {
		employeeID = caller.EmployeeID
	}
	if !caller.CanActFor(employeeID) {
		return absence.AbsenceRecord{}, absence.ErrForbidden
	}

	absenceType, err := absence.ParseType(req.Type)
	if err != nil {
		return absence.AbsenceRecord{}, err
	}
	if _, err := week.MondayOf(req.Year, req.Week); err != nil {
		return absence.AbsenceRecord{}, err
	}

	status, err := s.weekStatus(ctx, employeeID, req.Year, req.Week)
	if err != nil {
		return absence.AbsenceRecord{}, err
	}
	if status.Locked() && !caller.IsManager() {
		return absence.AbsenceRecord{}, validation.ErrWeekLocked
	}

	flags := req.DayFlags()

	// A flagged day must not already carry worked hours.
	entries, err := s.entries.ListForWeek(ctx, employeeID, req.Year, req.Week)
	if err != nil {
		return absence.AbsenceRecord{}, fmt.Errorf("failed to list hour entries: %w", err)
	}
	totals := timesheet.AggregateHoursByDay(entries)
	for i := 0; i < 5; i++ {
		if flags[i] && totals[i].IsPositive() {
			return absence.AbsenceRecord{}, absence.ErrHoursAlreadyLogged
		}
	}

	// Nor be flagged under another category.
	records, err := s.absences.ListForWeek(ctx, employeeID, req.Year, req.Week)
	if err != nil {
		return absence.AbsenceRecord{}, fmt.Errorf("failed to list absences: %w", err)
	}
	for _, record := range records {
		if record.Type == absenceType {
			continue
		}
		for i := 0; i < 5; i++ {
			if flags[i] && record.Days[i] {
				return absence.AbsenceRecord{}, absence.ErrAbsenceTypeConflict
			}
		}
	}

	record := absence.AbsenceRecord{
		EmployeeID: employeeID,
		Year:       req.Year,
		Week:       req.Week,
		Type:       absenceType,
		Days:       flags,
		Reason:     req.Reason,
		Status:     string(status),
	}

	saved, err := s.absences.Upsert(ctx, record)
	if err != nil {
		return absence.AbsenceRecord{}, fmt.Errorf("failed to upsert absence: %w", err)
	}
	return saved, nil
}

// Delete implements absence.AbsenceService.
func (s *Service) Delete(ctx context.Context, caller user.Caller, id ident.ID) error {
	record, err := s.absences.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !caller.CanActFor(record.EmployeeID) {
		return absence.ErrForbidden
	}

	status, err := s.weekStatus(ctx, record.EmployeeID, record.Year, record.Week)
	if err != nil {
		return err
	}
	if status.Locked() {
		return validation.ErrWeekLocked
	}

	if err := s.absences.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete absence: %w", err)
	}
	return nil
}

// List implements absence.AbsenceService.
func (s *Service) List(ctx context.Context, caller user.Caller, filter absence.Filter) (absence.ListResponse, error) {
	if !caller.IsManager() {
		own := caller.EmployeeID
		filter.EmployeeID = &own
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	if filter.Page == 0 {
		filter.Page = 1
	}

	rows, total, err := s.absences.List(ctx, filter)
	if err != nil {
		return absence.ListResponse{}, fmt.Errorf("failed to list absences: %w", err)
	}

	resp := absence.ListResponse{
		Absences: make([]absence.AbsenceResponse, 0, len(rows)),
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}
	for _, row := range rows {
		resp.Absences = append(resp.Absences, row.ToResponse())
	}
	return resp, nil
}

// DaysCount implements absence.AbsenceService.
func (s *Service) DaysCount(ctx context.Context, employeeID ident.ID, year, wk int, t absence.Type) (int, error) {
	records, err := s.absences.ListForWeek(ctx, employeeID, year, wk)
	if err != nil {
		return 0, fmt.Errorf("failed to list absences: %w", err)
	}
	for _, record := range records {
		if record.Type == t {
			return record.DaysCount(), nil
		}
	}
	return 0, nil
}

// HoursFor implements absence.AbsenceService.
func (s *Service) HoursFor(ctx context.Context, employeeID ident.ID, year, wk int, t absence.Type) (decimal.Decimal, error) {
	count, err := s.DaysCount(ctx, employeeID, year, wk, t)
	if err != nil {
		return decimal.Zero, err
	}
	return accounting.AbsenceDayHours.Mul(decimal.NewFromInt(int64(count))), nil
}

// Holidays implements absence.AbsenceService.
func (s *Service) Holidays(ctx context.Context, year int) ([]holiday.Holiday, error) {
	holidays, err := s.holidays.ListByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	return holidays, nil
}
