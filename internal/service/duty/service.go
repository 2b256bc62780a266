package duty

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gsh-hris/roster-backend-go/internal/domain/duty"
	"github.com/gsh-hris/roster-backend-go/internal/domain/employee"
	"github.com/gsh-hris/roster-backend-go/internal/domain/holiday"
	"github.com/gsh-hris/roster-backend-go/internal/domain/leave"
	"github.com/gsh-hris/roster-backend-go/internal/domain/shift"
	"github.com/gsh-hris/roster-backend-go/internal/pkg/database"
	"github.com/gsh-hris/roster-backend-go/internal/pkg/dateutil"
	"github.com/gsh-hris/roster-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type dutyServiceImpl struct {
	db           *database.DB
	scheduleRepo duty.ScheduleRepository
	holidayRepo  holiday.HolidayRepository
	employeeRepo employee.EmployeeRepository
	shiftRepo    shift.TemplateRepository
	leaveRepo    leave.TemplateRepository
}

func NewDutyService(
	db *database.DB,
	scheduleRepo duty.ScheduleRepository,
	holidayRepo holiday.HolidayRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.TemplateRepository,
	leaveRepo leave.TemplateRepository,
) duty.DutyService {
	return &dutyServiceImpl{
		db:           db,
		scheduleRepo: scheduleRepo,
		holidayRepo:  holidayRepo,
		employeeRepo: employeeRepo,
		shiftRepo:    shiftRepo,
		leaveRepo:    leaveRepo,
	}
}

// CreateSchedule implements duty.DutyService.
func (s *dutyServiceImpl) CreateSchedule(ctx context.Context, req duty.CreateScheduleRequest) (duty.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return duty.ScheduleResponse{}, err
	}

	ref, err := dateutil.ParseDate(req.ReferenceDate)
	if err != nil {
		return duty.ScheduleResponse{}, duty.ErrInvalidDate
	}
	start, end := dateutil.MonthPeriod(ref)

	created, err := s.scheduleRepo.Create(ctx, duty.Schedule{
		Department:  req.Department,
		PeriodStart: start,
		PeriodEnd:   end,
		Status:      duty.StatusDraft,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return duty.ScheduleResponse{}, duty.ErrSchedulePeriodExists
		}
		return duty.ScheduleResponse{}, fmt.Errorf("failed to create duty schedule: %w", err)
	}

	return mapScheduleToResponse(created), nil
}

// GetSchedule implements duty.DutyService.
func (s *dutyServiceImpl) GetSchedule(ctx context.Context, id string) (duty.ScheduleResponse, error) {
	schedule, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return duty.ScheduleResponse{}, duty.ErrScheduleNotFound
		}
		return duty.ScheduleResponse{}, fmt.Errorf("failed to get duty schedule: %w", err)
	}
	return mapScheduleToResponse(schedule), nil
}

// ListSchedules implements duty.DutyService.
func (s *dutyServiceImpl) ListSchedules(ctx context.Context, filter duty.ScheduleFilter) (duty.ListScheduleResponse, error) {
	if err := filter.Validate(); err != nil {
		return duty.ListScheduleResponse{}, err
	}

	schedules, total, err := s.scheduleRepo.List(ctx, filter)
	if err != nil {
		return duty.ListScheduleResponse{}, fmt.Errorf("failed to list duty schedules: %w", err)
	}

	resp := duty.ListScheduleResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Schedules:  make([]duty.ScheduleResponse, 0, len(schedules)),
	}
	for _, schedule := range schedules {
		resp.Schedules = append(resp.Schedules, mapScheduleToResponse(schedule))
	}
	return resp, nil
}

// DeleteSchedule implements duty.DutyService.
func (s *dutyServiceImpl) DeleteSchedule(ctx context.Context, id string) error {
	schedule, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return duty.ErrScheduleNotFound
		}
		return fmt.Errorf("failed to get duty schedule: %w", err)
	}
	if schedule.Status == duty.StatusApproved {
		return duty.ErrScheduleFinalized
	}
	return s.scheduleRepo.Delete(ctx, id)
}

// UpsertEntry implements duty.DutyService.
func (s *dutyServiceImpl) UpsertEntry(ctx context.Context, req duty.UpsertEntryRequest) (duty.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return duty.ScheduleResponse{}, err
	}

	schedule, err := s.scheduleRepo.GetByID(ctx, req.ScheduleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return duty.ScheduleResponse{}, duty.ErrScheduleNotFound
		}
		return duty.ScheduleResponse{}, fmt.Errorf("failed to get duty schedule: %w", err)
	}
	if schedule.Status == duty.StatusApproved {
		return duty.ScheduleResponse{}, duty.ErrScheduleFinalized
	}

	date, err := dateutil.ParseDate(req.Date)
	if err != nil {
		return duty.ScheduleResponse{}, duty.ErrInvalidDate
	}
	if date.Before(schedule.PeriodStart) || date.After(schedule.PeriodEnd) {
		return duty.ScheduleResponse{}, duty.ErrEntryOutsidePeriod
	}

	entry := duty.ScheduleEntry{
		ID:         uuid.NewString(),
		ScheduleID: schedule.ID,
		Date:       date,
	}
	for _, a := range req.Assignments {
		assignment := duty.EmployeeAssignment{
			Employee: duty.EmployeeRef{ID: a.EmployeeID},
			Kind:     duty.AssignmentKind(a.Kind),
			Remarks:  a.Remarks,
		}
		if a.ShiftID != nil {
			assignment.Shift = &duty.ShiftRef{ID: *a.ShiftID}
		}
		if a.LeaveID != nil {
			assignment.Leave = &duty.LeaveRef{ID: *a.LeaveID}
		}
		entry.Assignments = append(entry.Assignments, assignment)
	}

	catalogs, roster, err := s.loadReferenceData(ctx)
	if err != nil {
		return duty.ScheduleResponse{}, err
	}
	SnapshotAssignments(entry.Assignments, catalogs, roster)

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		_, err := s.scheduleRepo.UpsertEntry(txCtx, schedule.ID, entry)
		return err
	})
	if err != nil {
		return duty.ScheduleResponse{}, fmt.Errorf("failed to upsert schedule entry: %w", err)
	}

	return mapScheduleToResponse(schedule), nil
}

// SnapshotAssignments denormalizes the referenced employee names and
// shift/leave templates into the assignments. A saved entry keeps
// rendering as it was saved even after a template is edited or deleted;
// references that resolve nothing are persisted bare.
func SnapshotAssignments(assignments []duty.EmployeeAssignment, catalogs duty.Catalogs, roster employee.Roster) {
	for i := range assignments {
		a := &assignments[i]
		if emp, ok := roster[a.Employee.ID]; ok {
			a.Employee.Snapshot = &duty.EmployeeSnapshot{
				LastName:   emp.LastName,
				FirstName:  emp.FirstName,
				MiddleName: emp.MiddleName,
				Suffix:     emp.Suffix,
			}
		}
		if a.Shift != nil {
			if t, ok := catalogs.Shifts[a.Shift.ID]; ok {
				snap := t
				a.Shift.Snapshot = &snap
			}
		}
		if a.Leave != nil {
			if t, ok := catalogs.Leaves[a.Leave.ID]; ok {
				snap := t
				a.Leave.Snapshot = &snap
			}
		}
	}
}

func (s *dutyServiceImpl) loadReferenceData(ctx context.Context) (duty.Catalogs, employee.Roster, error) {
	employees, err := s.employeeRepo.ListAll(ctx)
	if err != nil {
		return duty.Catalogs{}, nil, fmt.Errorf("failed to list employees: %w", err)
	}

	shiftTemplates, err := s.shiftRepo.List(ctx)
	if err != nil {
		return duty.Catalogs{}, nil, fmt.Errorf("failed to list shift templates: %w", err)
	}

	leaveTemplates, err := s.leaveRepo.List(ctx)
	if err != nil {
		return duty.Catalogs{}, nil, fmt.Errorf("failed to list leave templates: %w", err)
	}

	catalogs := duty.Catalogs{
		Shifts: shift.CatalogOf(shiftTemplates),
		Leaves: leave.CatalogOf(leaveTemplates),
	}
	return catalogs, employee.ByID(employees), nil
}

// DeleteEntry implements duty.DutyService.
func (s *dutyServiceImpl) DeleteEntry(ctx context.Context, scheduleID string, dateStr string) error {
	schedule, err := s.scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return duty.ErrScheduleNotFound
		}
		return fmt.Errorf("failed to get duty schedule: %w", err)
	}
	if schedule.Status == duty.StatusApproved {
		return duty.ErrScheduleFinalized
	}

	date, err := dateutil.ParseDate(dateStr)
	if err != nil {
		return duty.ErrInvalidDate
	}
	if err := s.scheduleRepo.DeleteEntry(ctx, scheduleID, date); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return duty.ErrEntryNotFound
		}
		return fmt.Errorf("failed to delete schedule entry: %w", err)
	}
	return nil
}

// GetCalendarView implements duty.DutyService. Everything below the
// schedule fetch is pure recomputation; nothing derived is persisted.
func (s *dutyServiceImpl) GetCalendarView(ctx context.Context, scheduleID string) (duty.CalendarViewResponse, error) {
	schedule, err := s.scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return duty.CalendarViewResponse{}, duty.ErrScheduleNotFound
		}
		return duty.CalendarViewResponse{}, fmt.Errorf("failed to get duty schedule: %w", err)
	}

	entries, err := s.scheduleRepo.ListEntries(ctx, scheduleID)
	if err != nil {
		return duty.CalendarViewResponse{}, fmt.Errorf("failed to list schedule entries: %w", err)
	}

	holidays, err := s.holidayRepo.ListBetween(ctx, schedule.PeriodStart, schedule.PeriodEnd)
	if err != nil {
		return duty.CalendarViewResponse{}, fmt.Errorf("failed to list holidays: %w", err)
	}

	catalogs, roster, err := s.loadReferenceData(ctx)
	if err != nil {
		return duty.CalendarViewResponse{}, err
	}

	holidaySet := holiday.SetOf(holidays)

	cal, err := BuildCalendar(dateutil.Datestamp(schedule.PeriodStart), holidaySet)
	if err != nil {
		return duty.CalendarViewResponse{}, err
	}

	return duty.CalendarViewResponse{
		Schedule: mapScheduleToResponse(schedule),
		Days:     BuildDayViews(cal.Days, entries, catalogs, roster),
		WeekRows: BuildWeekRows(cal.Days),
		Weekly:   BuildWeeklySummary(cal.Days, entries, roster, catalogs),
		Monthly:  BuildMonthlySummary(cal.Days, entries, roster, catalogs),
	}, nil
}

// SubmitForApproval implements duty.DutyService.
func (s *dutyServiceImpl) SubmitForApproval(ctx context.Context, scheduleID string) (duty.ScheduleResponse, error) {
	schedule, err := s.scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return duty.ScheduleResponse{}, duty.ErrScheduleNotFound
		}
		return duty.ScheduleResponse{}, fmt.Errorf("failed to get duty schedule: %w", err)
	}
	if schedule.Status == duty.StatusApproved {
		return duty.ScheduleResponse{}, duty.ErrScheduleFinalized
	}

	if err := s.scheduleRepo.UpdateStatus(ctx, scheduleID, duty.StatusForApproval, nil); err != nil {
		return duty.ScheduleResponse{}, fmt.Errorf("failed to submit schedule for approval: %w", err)
	}
	schedule.Status = duty.StatusForApproval
	schedule.Remarks = nil
	return mapScheduleToResponse(schedule), nil
}

// RecordApprovalDecision implements duty.DutyService. The decision is
// produced by an out-of-scope confirmation workflow; only the outcome
// and optional remarks are recorded here.
func (s *dutyServiceImpl) RecordApprovalDecision(ctx context.Context, req duty.ApprovalDecisionRequest) (duty.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return duty.ScheduleResponse{}, err
	}

	schedule, err := s.scheduleRepo.GetByID(ctx, req.ScheduleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return duty.ScheduleResponse{}, duty.ErrScheduleNotFound
		}
		return duty.ScheduleResponse{}, fmt.Errorf("failed to get duty schedule: %w", err)
	}
	if schedule.Status != duty.StatusForApproval {
		return duty.ScheduleResponse{}, duty.ErrScheduleNotForApproval
	}

	status := duty.StatusApproved
	if duty.ApprovalDecision(req.Decision) == duty.DecisionRejected {
		status = duty.StatusRejected
	}

	if err := s.scheduleRepo.UpdateStatus(ctx, req.ScheduleID, status, req.Remarks); err != nil {
		return duty.ScheduleResponse{}, fmt.Errorf("failed to record approval decision: %w", err)
	}
	schedule.Status = status
	schedule.Remarks = req.Remarks
	return mapScheduleToResponse(schedule), nil
}

func mapScheduleToResponse(s duty.Schedule) duty.ScheduleResponse {
	return duty.ScheduleResponse{
		ID:          s.ID,
		Department:  s.Department,
		PeriodStart: dateutil.Datestamp(s.PeriodStart),
		PeriodEnd:   dateutil.Datestamp(s.PeriodEnd),
		Status:      string(s.Status),
		Remarks:     s.Remarks,
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   s.UpdatedAt.Format(time.RFC3339),
	}
}
