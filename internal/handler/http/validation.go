package http

import (
	"encoding/json"
	"net/http"

	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/validation"
	"github.com/timeflow-hr/timeflow-backend-go/internal/handler/http/response"
)

type ValidationHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Validate(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Reopen(w http.ResponseWriter, r *http.Request)
	PendingQueue(w http.ResponseWriter, r *http.Request)
}

type ValidationHandlerImpl struct {
	validationService validation.WeekValidationService
}

func NewValidationHandler(validationService validation.WeekValidationService) ValidationHandler {
	return &ValidationHandlerImpl{validationService: validationService}
}

// Submit implements ValidationHandler.
func (h *ValidationHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req validation.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	v, err := h.validationService.Submit(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, v.ToResponse())
}

// Validate implements ValidationHandler.
func (h *ValidationHandlerImpl) Validate(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req validation.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	v, err := h.validationService.Validate(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, v.ToResponse())
}

// Reject implements ValidationHandler.
func (h *ValidationHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req validation.RejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	v, err := h.validationService.Reject(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, v.ToResponse())
}

// Reopen implements ValidationHandler.
func (h *ValidationHandlerImpl) Reopen(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req validation.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	v, err := h.validationService.Reopen(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, v.ToResponse())
}

// PendingQueue implements ValidationHandler.
func (h *ValidationHandlerImpl) PendingQueue(w http.ResponseWriter, r *http.Request) {
	queue, err := h.validationService.PendingQueue(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, queue)
}
