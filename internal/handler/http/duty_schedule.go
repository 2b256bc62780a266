package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gsh-hris/roster-backend-go/internal/domain/duty"
	"github.com/gsh-hris/roster-backend-go/internal/handler/http/response"
)

type DutyScheduleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	UpsertEntry(w http.ResponseWriter, r *http.Request)
	DeleteEntry(w http.ResponseWriter, r *http.Request)
	GetCalendarView(w http.ResponseWriter, r *http.Request)
	SubmitForApproval(w http.ResponseWriter, r *http.Request)
	RecordDecision(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type DutyScheduleHandlerImpl struct {
	dutyService   duty.DutyService
	exportService duty.ExportService
}

func NewDutyScheduleHandler(dutyService duty.DutyService, exportService duty.ExportService) DutyScheduleHandler {
	return &DutyScheduleHandlerImpl{
		dutyService:   dutyService,
		exportService: exportService,
	}
}

// Create implements DutyScheduleHandler.
func (h *DutyScheduleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req duty.CreateScheduleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create schedule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	scheduleResponse, err := h.dutyService.CreateSchedule(r.Context(), req)
	if err != nil {
		slog.Error("Create schedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Duty schedule created", scheduleResponse)
}

// Get implements DutyScheduleHandler.
func (h *DutyScheduleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, "scheduleID")

	scheduleResponse, err := h.dutyService.GetSchedule(r.Context(), scheduleID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, scheduleResponse)
}

// List implements DutyScheduleHandler.
func (h *DutyScheduleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := duty.ScheduleFilter{}

	query := r.URL.Query()
	if department := query.Get("department"); department != "" {
		filter.Department = &department
	}
	if status := query.Get("status"); status != "" {
		filter.Status = &status
	}
	if page := query.Get("page"); page != "" {
		filter.Page, _ = strconv.Atoi(page)
	}
	if limit := query.Get("limit"); limit != "" {
		filter.Limit, _ = strconv.Atoi(limit)
	}

	listResponse, err := h.dutyService.ListSchedules(r.Context(), filter)
	if err != nil {
		slog.Error("List schedules service error", "error", err)
		response.HandleError(w, err)
		return
	}

	totalPages := int((listResponse.TotalCount + int64(listResponse.Limit) - 1) / int64(listResponse.Limit))
	response.SuccessWithMeta(w, listResponse.Schedules, &response.Meta{
		Page:       listResponse.Page,
		Limit:      listResponse.Limit,
		TotalItems: listResponse.TotalCount,
		TotalPages: totalPages,
	})
}

// Delete implements DutyScheduleHandler.
func (h *DutyScheduleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, "scheduleID")

	if err := h.dutyService.DeleteSchedule(r.Context(), scheduleID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Duty schedule deleted", nil)
}

// UpsertEntry implements DutyScheduleHandler.
func (h *DutyScheduleHandlerImpl) UpsertEntry(w http.ResponseWriter, r *http.Request) {
	var req duty.UpsertEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Upsert entry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ScheduleID = chi.URLParam(r, "scheduleID")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	scheduleResponse, err := h.dutyService.UpsertEntry(r.Context(), req)
	if err != nil {
		slog.Error("Upsert entry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule entry saved", scheduleResponse)
}

// DeleteEntry implements DutyScheduleHandler.
func (h *DutyScheduleHandlerImpl) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, "scheduleID")
	date := chi.URLParam(r, "date")

	if err := h.dutyService.DeleteEntry(r.Context(), scheduleID, date); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule entry deleted", nil)
}

// GetCalendarView implements DutyScheduleHandler.
func (h *DutyScheduleHandlerImpl) GetCalendarView(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, "scheduleID")

	view, err := h.dutyService.GetCalendarView(r.Context(), scheduleID)
	if err != nil {
		slog.Error("Calendar view service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, view)
}

// SubmitForApproval implements DutyScheduleHandler.
func (h *DutyScheduleHandlerImpl) SubmitForApproval(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, "scheduleID")

	scheduleResponse, err := h.dutyService.SubmitForApproval(r.Context(), scheduleID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule submitted for approval", scheduleResponse)
}

// RecordDecision implements DutyScheduleHandler.
func (h *DutyScheduleHandlerImpl) RecordDecision(w http.ResponseWriter, r *http.Request) {
	var req duty.ApprovalDecisionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Record decision decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ScheduleID = chi.URLParam(r, "scheduleID")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	scheduleResponse, err := h.dutyService.RecordApprovalDecision(r.Context(), req)
	if err != nil {
		slog.Error("Record decision service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Approval decision recorded", scheduleResponse)
}

// Export implements DutyScheduleHandler.
func (h *DutyScheduleHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, "scheduleID")

	buf, filename, err := h.exportService.ExportSchedule(r.Context(), scheduleID)
	if err != nil {
		slog.Error("Export schedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Export schedule write error", "error", err)
	}
}
