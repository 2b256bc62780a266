package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gsh-hris/roster-backend-go/internal/domain/holiday"
	"github.com/gsh-hris/roster-backend-go/internal/domain/leave"
	"github.com/gsh-hris/roster-backend-go/internal/domain/shift"
	"github.com/gsh-hris/roster-backend-go/internal/handler/http/response"
	"github.com/gsh-hris/roster-backend-go/internal/service/master"
)

type MasterHandler interface {
	CreateShiftTemplate(w http.ResponseWriter, r *http.Request)
	GetShiftTemplate(w http.ResponseWriter, r *http.Request)
	ListShiftTemplates(w http.ResponseWriter, r *http.Request)
	UpdateShiftTemplate(w http.ResponseWriter, r *http.Request)
	DeleteShiftTemplate(w http.ResponseWriter, r *http.Request)

	CreateLeaveTemplate(w http.ResponseWriter, r *http.Request)
	GetLeaveTemplate(w http.ResponseWriter, r *http.Request)
	ListLeaveTemplates(w http.ResponseWriter, r *http.Request)
	UpdateLeaveTemplate(w http.ResponseWriter, r *http.Request)
	DeleteLeaveTemplate(w http.ResponseWriter, r *http.Request)

	CreateHoliday(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
	UpdateHoliday(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &MasterHandlerImpl{masterService: masterService}
}

// ==================== SHIFT TEMPLATES ====================

// CreateShiftTemplate implements MasterHandler.
func (h *MasterHandlerImpl) CreateShiftTemplate(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateTemplateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create shift template decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	templateResponse, err := h.masterService.CreateShiftTemplate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift template created", templateResponse)
}

// GetShiftTemplate implements MasterHandler.
func (h *MasterHandlerImpl) GetShiftTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "templateID")

	templateResponse, err := h.masterService.GetShiftTemplate(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, templateResponse)
}

// ListShiftTemplates implements MasterHandler.
func (h *MasterHandlerImpl) ListShiftTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.masterService.ListShiftTemplates(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, templates)
}

// UpdateShiftTemplate implements MasterHandler.
func (h *MasterHandlerImpl) UpdateShiftTemplate(w http.ResponseWriter, r *http.Request) {
	var req shift.UpdateTemplateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update shift template decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "templateID")

	templateResponse, err := h.masterService.UpdateShiftTemplate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift template updated", templateResponse)
}

// DeleteShiftTemplate implements MasterHandler.
func (h *MasterHandlerImpl) DeleteShiftTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "templateID")

	if err := h.masterService.DeleteShiftTemplate(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift template deleted", nil)
}

// ==================== LEAVE TEMPLATES ====================

// CreateLeaveTemplate implements MasterHandler.
func (h *MasterHandlerImpl) CreateLeaveTemplate(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateTemplateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create leave template decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	templateResponse, err := h.masterService.CreateLeaveTemplate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave template created", templateResponse)
}

// GetLeaveTemplate implements MasterHandler.
func (h *MasterHandlerImpl) GetLeaveTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "templateID")

	templateResponse, err := h.masterService.GetLeaveTemplate(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, templateResponse)
}

// ListLeaveTemplates implements MasterHandler.
func (h *MasterHandlerImpl) ListLeaveTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.masterService.ListLeaveTemplates(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, templates)
}

// UpdateLeaveTemplate implements MasterHandler.
func (h *MasterHandlerImpl) UpdateLeaveTemplate(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateTemplateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update leave template decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "templateID")

	templateResponse, err := h.masterService.UpdateLeaveTemplate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave template updated", templateResponse)
}

// DeleteLeaveTemplate implements MasterHandler.
func (h *MasterHandlerImpl) DeleteLeaveTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "templateID")

	if err := h.masterService.DeleteLeaveTemplate(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave template deleted", nil)
}

// ==================== HOLIDAYS ====================

// CreateHoliday implements MasterHandler.
func (h *MasterHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create holiday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	holidayResponse, err := h.masterService.CreateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created", holidayResponse)
}

// ListHolidays implements MasterHandler.
func (h *MasterHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := holiday.ListHolidayRequest{
		Start: query.Get("start"),
		End:   query.Get("end"),
	}

	holidays, err := h.masterService.ListHolidays(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

// UpdateHoliday implements MasterHandler.
func (h *MasterHandlerImpl) UpdateHoliday(w http.ResponseWriter, r *http.Request) {
	var req holiday.UpdateHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update holiday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "holidayID")

	holidayResponse, err := h.masterService.UpdateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday updated", holidayResponse)
}

// DeleteHoliday implements MasterHandler.
func (h *MasterHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "holidayID")

	if err := h.masterService.DeleteHoliday(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted", nil)
}
