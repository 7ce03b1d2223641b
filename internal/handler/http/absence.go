package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/absence"
	"github.com/timeflow-hr/timeflow-backend-go/internal/handler/http/response"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/ident"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/week"
)

type AbsenceHandler interface {
	Set(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Holidays(w http.ResponseWriter, r *http.Request)
	Types(w http.ResponseWriter, r *http.Request)
}

type AbsenceHandlerImpl struct {
	absenceService absence.AbsenceService
}

func NewAbsenceHandler(absenceService absence.AbsenceService) AbsenceHandler {
	return &AbsenceHandlerImpl{absenceService: absenceService}
}

// Set implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Set(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req absence.SetAbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.absenceService.Set(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record.ToResponse())
}

// Delete implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.absenceService.Delete(r.Context(), caller, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence deleted", nil)
}

// List implements AbsenceHandler.
func (h *AbsenceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := absence.Filter{
		EmployeeID: queryID(r, "salarie_id"),
		Year:       queryInt(r, "annee"),
		Week:       queryInt(r, "semaine"),
		Status:     queryString(r, "status"),
		Page:       queryIntDefault(r, "page", 1),
		Limit:      queryIntDefault(r, "limit", 20),
	}
	if raw := r.URL.Query().Get("type"); raw != "" {
		t, err := absence.ParseType(raw)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		filter.Type = &t
	}

	list, err := h.absenceService.List(r.Context(), caller, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}

// Holidays implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Holidays(w http.ResponseWriter, r *http.Request) {
	year := queryIntDefault(r, "annee", 0)
	if year == 0 {
		year, _ = week.Current()
	}

	holidays, err := h.absenceService.Holidays(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

// Types implements AbsenceHandler. Returns the selectable absence
// categories with their display labels.
func (h *AbsenceHandlerImpl) Types(w http.ResponseWriter, r *http.Request) {
	type typeOption struct {
		Value absence.Type `json:"value"`
		Label string      `json:"label"`
	}

	options := make([]typeOption, 0)
	for _, t := range absence.Types() {
		options = append(options, typeOption{Value: t, Label: t.Label()})
	}
	response.Success(w, options)
}
