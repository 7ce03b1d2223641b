package timesheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/absence"
	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/holiday"
	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/project"
	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/timesheet"
	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/user"
	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/validation"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/ident"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/week"
)

type Service struct {
	entries     timesheet.TimesheetRepository
	absences    absence.AbsenceRepository
	validations validation.WeekValidationRepository
	holidays    holiday.HolidayRepository
	projects    project.ProjectRepository
}

func NewTimesheetService(
	entries timesheet.TimesheetRepository,
	absences absence.AbsenceRepository,
	validations validation.WeekValidationRepository,
	holidays holiday.HolidayRepository,
	projects project.ProjectRepository,
) *Service {
	return &Service{
		entries:     entries,
		absences:    absences,
		validations: validations,
		holidays:    holidays,
		projects:    projects,
	}
}

// weekStatus resolves the lock state; a missing validation record means the
// week has never left draft.
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

// Upsert implements timesheet.TimesheetService.
func (s *Service) Upsert(ctx context.Context, caller user.Caller, req timesheet.UpsertEntryRequest) (timesheet.HourEntry, error) {
	employeeID := req.EmployeeID
	if employeeID.IsZero() {
		employeeID = caller.EmployeeID
	}
	if !caller.CanActFor(employeeID) {
		return timesheet.HourEntry{}, timesheet.ErrForbidden
	}

	days, err := week.Days(req.Year, req.Week)
	if err != nil {
		return timesheet.HourEntry{}, err
	}

	task, err := s.projects.GetTask(ctx, req.TaskID)
	if err != nil {
		return timesheet.HourEntry{}, err
	}
	if task.ProjectID != req.ProjectID {
		return timesheet.HourEntry{}, project.ErrTaskProjectMismatch
	}

	status, err := s.weekStatus(ctx, employeeID, req.Year, req.Week)
	if err != nil {
		return timesheet.HourEntry{}, err
	}
	// Managers may bypass the lock for correction workflows.
	if status.Locked() && !caller.IsManager() {
		return timesheet.HourEntry{}, validation.ErrWeekLocked
	}

	hours := req.DayHours()

	records, err := s.absences.ListForWeek(ctx, employeeID, req.Year, req.Week)
	if err != nil {
		return timesheet.HourEntry{}, fmt.Errorf("failed to list absences: %w", err)
	}
	for _, record := range records {
		for i := 0; i < 5; i++ {
			if record.Days[i] && hours[i].IsPositive() {
				return timesheet.HourEntry{}, timesheet.ErrConflictWithAbsence
			}
		}
	}

	holidays, err := s.holidays.ListBetween(ctx, days[0], days[6])
	if err != nil {
		return timesheet.HourEntry{}, fmt.Errorf("failed to read holidays: %w", err)
	}
	for _, h := range holidays {
		for i, day := range days {
			if sameDate(h.Date, day) && hours[i].IsPositive() {
				return timesheet.HourEntry{}, timesheet.ErrHolidayConflict
			}
		}
	}

	entry := timesheet.HourEntry{
		EmployeeID: employeeID,
		ProjectID:  req.ProjectID,
		TaskID:     req.TaskID,
		Year:       req.Year,
		Week:       req.Week,
		Hours:      hours,
		Comment:    req.Comment,
		Status:     string(status),
	}

	saved, err := s.entries.Upsert(ctx, entry)
	if err != nil {
		return timesheet.HourEntry{}, fmt.Errorf("failed to upsert hour entry: %w", err)
	}
	return saved, nil
}

// Delete implements timesheet.TimesheetService.
func (s *Service) Delete(ctx context.Context, caller user.Caller, id ident.ID) error {
	entry, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !caller.CanActFor(entry.EmployeeID) {
		return timesheet.ErrForbidden
	}

	status, err := s.weekStatus(ctx, entry.EmployeeID, entry.Year, entry.Week)
	if err != nil {
		return err
	}
	if status.Locked() {
		return validation.ErrWeekLocked
	}

	if err := s.entries.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete hour entry: %w", err)
	}
	return nil
}

// List implements timesheet.TimesheetService.
func (s *Service) List(ctx context.Context, caller user.Caller, filter timesheet.Filter) (timesheet.ListResponse, error) {
	// Non-manager callers only ever see their own rows.
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

	rows, total, err := s.entries.List(ctx, filter)
	if err != nil {
		return timesheet.ListResponse{}, fmt.Errorf("failed to list hour entries: %w", err)
	}

	resp := timesheet.ListResponse{
		Entries: make([]timesheet.HourEntryResponse, 0, len(rows)),
		Total:   total,
		Page:    filter.Page,
		Limit:   filter.Limit,
	}
	for _, row := range rows {
		resp.Entries = append(resp.Entries, row.ToResponse())
	}
	return resp, nil
}

// EntriesFor implements timesheet.TimesheetService. Serves both the
// employee's own weekly view and the manager's per-employee detail.
func (s *Service) EntriesFor(ctx context.Context, caller user.Caller, employeeID ident.ID, year, wk int) ([]timesheet.HourEntry, error) {
	if employeeID.IsZero() {
		employeeID = caller.EmployeeID
	}
	if !caller.CanActFor(employeeID) {
		return nil, timesheet.ErrForbidden
	}
	rows, err := s.entries.ListForWeek(ctx, employeeID, year, wk)
	if err != nil {
		return nil, fmt.Errorf("failed to list hour entries: %w", err)
	}
	return rows, nil
}

// Week implements timesheet.TimesheetService.
func (s *Service) Week(ctx context.Context, caller user.Caller, employeeID ident.ID, year, wk int) (timesheet.WeekView, error) {
	if employeeID.IsZero() {
		employeeID = caller.EmployeeID
	}

	days, err := week.Days(year, wk)
	if err != nil {
		return timesheet.WeekView{}, err
	}

	rows, err := s.EntriesFor(ctx, caller, employeeID, year, wk)
	if err != nil {
		return timesheet.WeekView{}, err
	}

	holidays, err := s.holidays.ListBetween(ctx, days[0], days[6])
	if err != nil {
		return timesheet.WeekView{}, fmt.Errorf("failed to read holidays: %w", err)
	}

	view := timesheet.WeekView{
		Year:     year,
		Week:     wk,
		Monday:   days[0],
		Sunday:   days[6],
		Entries:  make([]timesheet.HourEntryResponse, 0, len(rows)),
		Holidays: holidays,
	}
	for _, row := range rows {
		view.Entries = append(view.Entries, row.ToResponse())
	}
	for i, total := range timesheet.AggregateHoursByDay(rows) {
		view.DailyTotals[i] = total.StringFixed(1)
	}

	v, err := s.validations.GetForWeek(ctx, employeeID, year, wk)
	if err == nil {
		resp := v.ToResponse()
		view.Validation = &resp
	} else if !errors.Is(err, validation.ErrNotFound) {
		return timesheet.WeekView{}, fmt.Errorf("failed to get week validation: %w", err)
	}

	return view, nil
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
