package duty

import (
	"bytes"
	"context"
)

type DutyService interface {
	CreateSchedule(ctx context.Context, req CreateScheduleRequest) (ScheduleResponse, error)
	GetSchedule(ctx context.Context, id string) (ScheduleResponse, error)
	ListSchedules(ctx context.Context, filter ScheduleFilter) (ListScheduleResponse, error)
	DeleteSchedule(ctx context.Context, id string) error

	UpsertEntry(ctx context.Context, req UpsertEntryRequest) (ScheduleResponse, error)
	DeleteEntry(ctx context.Context, scheduleID string, date string) error

	// GetCalendarView recomputes the grouped calendar and both hour
	// summaries from the stored entries and reference catalogs.
	GetCalendarView(ctx context.Context, scheduleID string) (CalendarViewResponse, error)

	SubmitForApproval(ctx context.Context, scheduleID string) (ScheduleResponse, error)
	RecordApprovalDecision(ctx context.Context, req ApprovalDecisionRequest) (ScheduleResponse, error)
}

// ExportService renders a schedule's calendar and summaries to a
// spreadsheet for printing.
type ExportService interface {
	ExportSchedule(ctx context.Context, scheduleID string) (*bytes.Buffer, string, error)
}
