package duty

import (
	"time"

	"github.com/gsh-hris/roster-backend-go/internal/domain/leave"
	"github.com/gsh-hris/roster-backend-go/internal/domain/shift"
)

// Schedule is one duty roster covering a single calendar month for a
// department. Entries are keyed by date; an approved schedule is
// read-only.
type Schedule struct {
	ID          string
	Department  string
	PeriodStart time.Time
	PeriodEnd   time.Time
	Status      ScheduleStatus
	Remarks     *string
	Entries     []ScheduleEntry
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ScheduleStatus string

const (
	StatusDraft       ScheduleStatus = "draft"
	StatusForApproval ScheduleStatus = "for_approval"
	StatusApproved    ScheduleStatus = "approved"
	StatusRejected    ScheduleStatus = "rejected"
)

// ScheduleEntry holds every employee assignment for one calendar date.
type ScheduleEntry struct {
	ID          string
	ScheduleID  string
	Date        time.Time
	Assignments []EmployeeAssignment
}

type AssignmentKind string

const (
	KindDuty       AssignmentKind = "duty"
	KindLeave      AssignmentKind = "leave"
	KindOff        AssignmentKind = "off"
	KindHolidayOff AssignmentKind = "holiday_off"
)

var AssignmentKindValues = []string{
	string(KindDuty),
	string(KindLeave),
	string(KindOff),
	string(KindHolidayOff),
}

// EmployeeAssignment puts one employee on one date. Shift and Leave are
// populated according to Kind; both carry an optional denormalized
// snapshot which, when present, wins over the catalog lookup.
type EmployeeAssignment struct {
	Employee EmployeeRef
	Kind     AssignmentKind
	Shift    *ShiftRef
	Leave    *LeaveRef
	Remarks  *string
}

// EmployeeRef references an employee by id with an optional inlined
// name snapshot taken when the schedule was saved.
type EmployeeRef struct {
	ID       string
	Snapshot *EmployeeSnapshot
}

type EmployeeSnapshot struct {
	LastName   string
	FirstName  string
	MiddleName *string
	Suffix     *string
}

// ShiftRef is the inline-or-reference union for shift templates.
type ShiftRef struct {
	ID       string
	Snapshot *shift.Template
}

// Resolve applies snapshot-first resolution against the catalog. The
// second return is false when neither snapshot nor catalog has the
// template.
func (r *ShiftRef) Resolve(catalog shift.Catalog) (shift.Template, bool) {
	if r == nil {
		return shift.Template{}, false
	}
	if r.Snapshot != nil {
		return *r.Snapshot, true
	}
	t, ok := catalog[r.ID]
	return t, ok
}

// LeaveRef is the inline-or-reference union for leave templates.
type LeaveRef struct {
	ID       string
	Snapshot *leave.Template
}

func (r *LeaveRef) Resolve(catalog leave.Catalog) (leave.Template, bool) {
	if r == nil {
		return leave.Template{}, false
	}
	if r.Snapshot != nil {
		return *r.Snapshot, true
	}
	t, ok := catalog[r.ID]
	return t, ok
}

// Catalogs bundles the reference data the resolver needs.
type Catalogs struct {
	Shifts shift.Catalog
	Leaves leave.Catalog
}

type ApprovalDecision string

const (
	DecisionApproved ApprovalDecision = "approved"
	DecisionRejected ApprovalDecision = "rejected"
)
