package response

import (
	"errors"
	"net/http"

	"github.com/gsh-hris/roster-backend-go/internal/domain/auth"
	"github.com/gsh-hris/roster-backend-go/internal/domain/duty"
	"github.com/gsh-hris/roster-backend-go/internal/domain/employee"
	"github.com/gsh-hris/roster-backend-go/internal/domain/holiday"
	"github.com/gsh-hris/roster-backend-go/internal/domain/leave"
	"github.com/gsh-hris/roster-backend-go/internal/domain/shift"
	"github.com/gsh-hris/roster-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrForbidden):
		Forbidden(w, "Insufficient role for this action")

	// Duty schedule domain errors
	case errors.Is(err, duty.ErrScheduleNotFound):
		NotFound(w, "Duty schedule not found")
	case errors.Is(err, duty.ErrSchedulePeriodExists):
		Conflict(w, "A duty schedule already exists for this department and period")
	case errors.Is(err, duty.ErrScheduleFinalized):
		Conflict(w, "Approved schedules cannot be modified")
	case errors.Is(err, duty.ErrScheduleNotForApproval):
		Conflict(w, "Schedule is not awaiting approval")
	case errors.Is(err, duty.ErrEntryNotFound):
		NotFound(w, "Schedule entry not found")
	case errors.Is(err, duty.ErrEntryOutsidePeriod):
		BadRequest(w, "Entry date falls outside the schedule period", nil)
	case errors.Is(err, duty.ErrInvalidDate):
		BadRequest(w, "Invalid date", nil)
	case errors.Is(err, duty.ErrInvalidDecision):
		BadRequest(w, "Decision must be approved or rejected", nil)
	case errors.Is(err, duty.ErrInvalidRequestData):
		BadRequest(w, "Invalid request data", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNoExists):
		Conflict(w, "Employee number already exists")

	// Master data errors
	case errors.Is(err, shift.ErrTemplateNotFound):
		NotFound(w, "Shift template not found")
	case errors.Is(err, shift.ErrTemplateNameExists):
		Conflict(w, "Shift template name already exists")
	case errors.Is(err, leave.ErrTemplateNotFound):
		NotFound(w, "Leave template not found")
	case errors.Is(err, leave.ErrTemplateNameExists):
		Conflict(w, "Leave template name already exists")
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "A holiday already exists on this date")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
