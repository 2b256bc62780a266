package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gsh-hris/roster-backend-go/internal/domain/duty"
	"github.com/gsh-hris/roster-backend-go/internal/domain/leave"
	"github.com/gsh-hris/roster-backend-go/internal/domain/shift"
	"github.com/gsh-hris/roster-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type dutyScheduleRepositoryImpl struct {
	db *database.DB
}

func NewDutyScheduleRepository(db *database.DB) duty.ScheduleRepository {
	return &dutyScheduleRepositoryImpl{db: db}
}

// Create implements duty.ScheduleRepository.
func (r *dutyScheduleRepositoryImpl) Create(ctx context.Context, s duty.Schedule) (duty.Schedule, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO duty_schedules (
			id, department, period_start, period_end, status,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		s.Department, s.PeriodStart, s.PeriodEnd, s.Status,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return duty.Schedule{}, err
	}
	return s, nil
}

// GetByID implements duty.ScheduleRepository.
func (r *dutyScheduleRepositoryImpl) GetByID(ctx context.Context, id string) (duty.Schedule, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, department, period_start, period_end, status, remarks,
			   created_at, updated_at
		FROM duty_schedules
		WHERE id = $1
	`
	var s duty.Schedule
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Department, &s.PeriodStart, &s.PeriodEnd, &s.Status, &s.Remarks,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return duty.Schedule{}, err
	}
	return s, nil
}

// List implements duty.ScheduleRepository.
func (r *dutyScheduleRepositoryImpl) List(ctx context.Context, filter duty.ScheduleFilter) ([]duty.Schedule, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := " WHERE 1=1"
	args := []interface{}{}
	argPos := 1
	if filter.Department != nil {
		where += fmt.Sprintf(" AND department = $%d", argPos)
		args = append(args, *filter.Department)
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM duty_schedules"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, department, period_start, period_end, status, remarks,
			   created_at, updated_at
		FROM duty_schedules` + where + fmt.Sprintf(`
		ORDER BY period_start DESC, department
		LIMIT $%d OFFSET $%d
	`, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var schedules []duty.Schedule
	for rows.Next() {
		var s duty.Schedule
		if err := rows.Scan(
			&s.ID, &s.Department, &s.PeriodStart, &s.PeriodEnd, &s.Status, &s.Remarks,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		schedules = append(schedules, s)
	}
	return schedules, total, rows.Err()
}

// UpdateStatus implements duty.ScheduleRepository.
func (r *dutyScheduleRepositoryImpl) UpdateStatus(ctx context.Context, id string, status duty.ScheduleStatus, remarks *string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE duty_schedules
		SET status = $2, remarks = $3, updated_at = NOW()
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id, status, remarks)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete implements duty.ScheduleRepository.
func (r *dutyScheduleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	commandTag, err := q.Exec(ctx, `DELETE FROM duty_schedules WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return pgx.ErrNoRows
	}
	return nil
}

// assignmentSnapshots is the jsonb shape stored per assignment.
type assignmentSnapshots struct {
	Employee *duty.EmployeeSnapshot `json:"employee,omitempty"`
	Shift    *shift.Template        `json:"shift,omitempty"`
	Leave    *leave.Template        `json:"leave,omitempty"`
}

func decodeAssignmentSnapshots(data []byte) (assignmentSnapshots, error) {
	var snapshots assignmentSnapshots
	if data == nil {
		return snapshots, nil
	}
	if err := json.Unmarshal(data, &snapshots); err != nil {
		return assignmentSnapshots{}, fmt.Errorf("failed to decode assignment snapshots: %w", err)
	}
	return snapshots, nil
}

// UpsertEntry implements duty.ScheduleRepository. The assignment set
// for the date is replaced wholesale; the caller wraps this in a
// transaction.
func (r *dutyScheduleRepositoryImpl) UpsertEntry(ctx context.Context, scheduleID string, entry duty.ScheduleEntry) (duty.ScheduleEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO duty_schedule_entries (id, schedule_id, entry_date, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (schedule_id, entry_date)
		DO UPDATE SET updated_at = NOW()
		RETURNING id
	`
	if err := q.QueryRow(ctx, query, entry.ID, scheduleID, entry.Date).Scan(&entry.ID); err != nil {
		return duty.ScheduleEntry{}, err
	}

	if _, err := q.Exec(ctx, `DELETE FROM duty_schedule_assignments WHERE entry_id = $1`, entry.ID); err != nil {
		return duty.ScheduleEntry{}, err
	}

	insert := `
		INSERT INTO duty_schedule_assignments (
			id, entry_id, employee_id, kind,
			shift_template_id, leave_template_id, remarks, snapshots
		) VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7)
	`
	for _, a := range entry.Assignments {
		var shiftID, leaveID *string
		snapshots := assignmentSnapshots{Employee: a.Employee.Snapshot}
		if a.Shift != nil {
			shiftID = &a.Shift.ID
			snapshots.Shift = a.Shift.Snapshot
		}
		if a.Leave != nil {
			leaveID = &a.Leave.ID
			snapshots.Leave = a.Leave.Snapshot
		}
		snapshotsJSON, err := json.Marshal(snapshots)
		if err != nil {
			return duty.ScheduleEntry{}, fmt.Errorf("failed to encode assignment snapshots: %w", err)
		}

		if _, err := q.Exec(ctx, insert,
			entry.ID, a.Employee.ID, a.Kind, shiftID, leaveID, a.Remarks, snapshotsJSON,
		); err != nil {
			return duty.ScheduleEntry{}, err
		}
	}

	entry.ScheduleID = scheduleID
	return entry, nil
}

// DeleteEntry implements duty.ScheduleRepository.
func (r *dutyScheduleRepositoryImpl) DeleteEntry(ctx context.Context, scheduleID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)
	commandTag, err := q.Exec(ctx, `
		DELETE FROM duty_schedule_entries
		WHERE schedule_id = $1 AND entry_date = $2
	`, scheduleID, date)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return pgx.ErrNoRows
	}
	return nil
}

// ListEntries implements duty.ScheduleRepository.
func (r *dutyScheduleRepositoryImpl) ListEntries(ctx context.Context, scheduleID string) ([]duty.ScheduleEntry, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT e.id, e.entry_date,
			   a.employee_id, a.kind, a.shift_template_id, a.leave_template_id,
			   a.remarks, a.snapshots
		FROM duty_schedule_entries e
		LEFT JOIN duty_schedule_assignments a ON a.entry_id = e.id
		WHERE e.schedule_id = $1
		ORDER BY e.entry_date, a.id
	`
	rows, err := q.Query(ctx, query, scheduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []duty.ScheduleEntry
	index := map[string]int{}
	for rows.Next() {
		var (
			entryID       string
			entryDate     time.Time
			employeeID    *string
			kind          *string
			shiftID       *string
			leaveID       *string
			remarks       *string
			snapshotsJSON []byte
		)
		if err := rows.Scan(&entryID, &entryDate, &employeeID, &kind, &shiftID, &leaveID, &remarks, &snapshotsJSON); err != nil {
			return nil, err
		}

		at, ok := index[entryID]
		if !ok {
			at = len(entries)
			index[entryID] = at
			entries = append(entries, duty.ScheduleEntry{
				ID:         entryID,
				ScheduleID: scheduleID,
				Date:       entryDate,
			})
		}

		if employeeID == nil || kind == nil {
			continue // entry with no assignments
		}

		snapshots, err := decodeAssignmentSnapshots(snapshotsJSON)
		if err != nil {
			return nil, err
		}

		assignment := duty.EmployeeAssignment{
			Employee: duty.EmployeeRef{ID: *employeeID, Snapshot: snapshots.Employee},
			Kind:     duty.AssignmentKind(*kind),
			Remarks:  remarks,
		}
		if shiftID != nil {
			assignment.Shift = &duty.ShiftRef{ID: *shiftID, Snapshot: snapshots.Shift}
		}
		if leaveID != nil {
			assignment.Leave = &duty.LeaveRef{ID: *leaveID, Snapshot: snapshots.Leave}
		}
		entries[at].Assignments = append(entries[at].Assignments, assignment)
	}
	return entries, rows.Err()
}
