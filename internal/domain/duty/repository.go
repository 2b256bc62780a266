package duty

import (
	"context"
	"time"
)

type ScheduleRepository interface {
	Create(ctx context.Context, s Schedule) (Schedule, error)
	GetByID(ctx context.Context, id string) (Schedule, error)
	List(ctx context.Context, filter ScheduleFilter) ([]Schedule, int64, error)
	UpdateStatus(ctx context.Context, id string, status ScheduleStatus, remarks *string) error
	Delete(ctx context.Context, id string) error

	// UpsertEntry replaces the assignment set for one date of a schedule.
	UpsertEntry(ctx context.Context, scheduleID string, entry ScheduleEntry) (ScheduleEntry, error)
	DeleteEntry(ctx context.Context, scheduleID string, date time.Time) error
	ListEntries(ctx context.Context, scheduleID string) ([]ScheduleEntry, error)
}
