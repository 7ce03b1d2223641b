package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/timesheet"
	"github.com/timeflow-hr/timeflow-backend-go/internal/handler/http/response"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/ident"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/week"
)

type TimesheetHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Week(w http.ResponseWriter, r *http.Request)
	WeekOptions(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: timesheetService}
}

// Upsert implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req timesheet.UpsertEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	entry, err := h.timesheetService.Upsert(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entry.ToResponse())
}

// Delete implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id, err := ident.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid id", nil)
		return
	}

	if err := h.timesheetService.Delete(r.Context(), caller, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Hour entry deleted", nil)
}

// List implements TimesheetHandler.
func (h *TimesheetHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := timesheet.Filter{
		EmployeeID: queryID(r, "salarie_id"),
		ProjectID:  queryID(r, "projet_id"),
		Year:       queryInt(r, "annee"),
		Week:       queryInt(r, "semaine"),
		Status:     queryString(r, "status"),
		Page:       queryIntDefault(r, "page", 1),
		Limit:      queryIntDefault(r, "limit", 20),
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	list, err := h.timesheetService.List(r.Context(), caller, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}

// Week implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Week(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	year, _ := strconv.Atoi(chi.URLParam(r, "annee"))
	wk, _ := strconv.Atoi(chi.URLParam(r, "semaine"))
	if year == 0 || wk == 0 {
		year, wk = week.Current()
	}

	var employeeID ident.ID
	if id := queryID(r, "salarie_id"); id != nil {
		employeeID = *id
	}

	view, err := h.timesheetService.Week(r.Context(), caller, employeeID, year, wk)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, view)
}

// WeekOptions implements TimesheetHandler. Returns the selectable weeks of
// a year with their date-range labels.
func (h *TimesheetHandlerImpl) WeekOptions(w http.ResponseWriter, r *http.Request) {
	year := queryIntDefault(r, "annee", 0)
	if year == 0 {
		year, _ = week.Current()
	}

	response.Success(w, week.WeeksOfYear(year))
}

func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func queryIntDefault(r *http.Request, name string, fallback int) int {
	if v := queryInt(r, name); v != nil {
		return *v
	}
	return fallback
}

func queryID(r *http.Request, name string) *ident.ID {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	id, err := ident.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

func queryString(r *http.Request, name string) *string {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	return &raw
}
