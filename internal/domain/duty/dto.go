package duty

import (
	"strings"

	"github.com/gsh-hris/roster-backend-go/internal/pkg/validator"
)

type CreateScheduleRequest struct {
	Department string `json:"department"`
	// Any date inside the target month, YYYY-MM-DD. The schedule
	// period is the full calendar month containing it.
	ReferenceDate string `json:"reference_date"`
}

func (r *CreateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}
	if validator.IsEmpty(r.ReferenceDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "reference_date",
			Message: "reference_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.ReferenceDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "reference_date",
			Message: "reference_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignmentRequest struct {
	EmployeeID string  `json:"employee_id"`
	Kind       string  `json:"kind"`
	ShiftID    *string `json:"shift_id,omitempty"`
	LeaveID    *string `json:"leave_id,omitempty"`
	Remarks    *string `json:"remarks,omitempty"`
}

type UpsertEntryRequest struct {
	ScheduleID  string              `json:"-"`
	Date        string              `json:"date"`
	Assignments []AssignmentRequest `json:"assignments"`
}

func (r *UpsertEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ScheduleID) {
		errs = append(errs, validator.ValidationError{
			Field:   "schedule_id",
			Message: "schedule_id is required",
		})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	for _, a := range r.Assignments {
		if validator.IsEmpty(a.EmployeeID) {
			errs = append(errs, validator.ValidationError{
				Field:   "assignments.employee_id",
				Message: "employee_id is required on every assignment",
			})
		}
		if !validator.IsInSlice(a.Kind, AssignmentKindValues) {
			errs = append(errs, validator.ValidationError{
				Field:   "assignments.kind",
				Message: "kind must be one of: " + strings.Join(AssignmentKindValues, ", "),
			})
		}
		if a.Kind == string(KindDuty) && (a.ShiftID == nil || validator.IsEmpty(*a.ShiftID)) {
			errs = append(errs, validator.ValidationError{
				Field:   "assignments.shift_id",
				Message: "shift_id is required for duty assignments",
			})
		}
		if a.Kind == string(KindLeave) && (a.LeaveID == nil || validator.IsEmpty(*a.LeaveID)) {
			errs = append(errs, validator.ValidationError{
				Field:   "assignments.leave_id",
				Message: "leave_id is required for leave assignments",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ApprovalDecisionRequest struct {
	ScheduleID string  `json:"-"`
	Decision   string  `json:"decision"`
	Remarks    *string `json:"remarks,omitempty"`
}

func (r *ApprovalDecisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ScheduleID) {
		errs = append(errs, validator.ValidationError{
			Field:   "schedule_id",
			Message: "schedule_id is required",
		})
	}
	valid := []string{string(DecisionApproved), string(DecisionRejected)}
	if !validator.IsInSlice(r.Decision, valid) {
		errs = append(errs, validator.ValidationError{
			Field:   "decision",
			Message: "decision must be one of: " + strings.Join(valid, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ScheduleFilter struct {
	Department *string `json:"department,omitempty"`
	Status     *string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *ScheduleFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}
	if f.Status != nil {
		valid := []string{
			string(StatusDraft),
			string(StatusForApproval),
			string(StatusApproved),
			string(StatusRejected),
		}
		if !validator.IsInSlice(*f.Status, valid) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: " + strings.Join(valid, ", "),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ScheduleResponse struct {
	ID          string  `json:"id"`
	Department  string  `json:"department"`
	PeriodStart string  `json:"period_start"`
	PeriodEnd   string  `json:"period_end"`
	Status      string  `json:"status"`
	Remarks     *string `json:"remarks,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type ListScheduleResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	Schedules  []ScheduleResponse `json:"schedules"`
}

// CalendarViewResponse is the full composed calendar for one schedule:
// the day skeleton with grouped assignments, the 7-wide week rows, and
// both hour summaries.
type CalendarViewResponse struct {
	Schedule ScheduleResponse `json:"schedule"`
	Days     []DayView        `json:"days"`
	WeekRows [][]*CalendarDay `json:"week_rows"`
	Weekly   WeeklySummary    `json:"weekly_summary"`
	Monthly  MonthlySummary   `json:"monthly_summary"`
}
