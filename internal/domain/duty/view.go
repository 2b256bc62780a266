package duty

import "time"

// Derived view types. Everything here is recomputed on every read from
// the entry set plus the reference catalogs; nothing is persisted.

// CalendarDay is one cell of the duty calendar.
type CalendarDay struct {
	Date         time.Time
	Datestamp    string
	IsWeekend    bool
	IsHoliday    bool
	HolidayLabel string
	MarkRed      bool
}

type DisplayCategory string

const (
	CategoryDuty       DisplayCategory = "duty"
	CategoryLeave      DisplayCategory = "leave"
	CategoryOff        DisplayCategory = "off"
	CategoryHolidayOff DisplayCategory = "holiday_off"
	CategoryUnknown    DisplayCategory = "unknown"
)

// ResolvedDisplay is the normalized presentation of one assignment.
type ResolvedDisplay struct {
	Label            string
	GroupKey         string
	TimeRangeText    string
	ColorKey         string
	SortStartMinutes int
	Category         DisplayCategory

	// Leave assignments only: the per-member leave type and its short
	// abbreviation, exposed so callers can sub-group at render time.
	LeaveTemplateName string
	LeaveAbbrev       string
}

// GroupMember is one employee row inside a DayGroup.
type GroupMember struct {
	EmployeeID  string
	DisplayName string
	LastName    string
	Remarks     *string
	ResolvedDisplay
}

// DayGroup collects assignments sharing one display group for a date.
type DayGroup struct {
	GroupKey string
	Label    string
	Category DisplayCategory
	ColorKey string
	Members  []GroupMember
}

// DayView pairs a calendar day with its grouped assignments.
type DayView struct {
	Day    CalendarDay
	Groups []DayGroup
}

// HourCell is one weekly-summary cell: a numeric hour count, the "off"
// marker, or blank when the employee has no duty that day.
type HourCell struct {
	Text    string
	Hours   float64
	Numeric bool
}

// WeekRow is one employee's row across one 7-day week band.
type WeekRow struct {
	EmployeeID  string
	DisplayName string
	Cells       []HourCell
	TotalHours  float64
	TotalText   string
}

// WeekBlock is one 7-day band of the weekly summary.
type WeekBlock struct {
	Days []*CalendarDay
	Rows []WeekRow
}

type WeeklySummary struct {
	Weeks []WeekBlock
}

// MonthlyRow is one employee's full-period total.
type MonthlyRow struct {
	EmployeeID  string
	DisplayName string
	TotalHours  float64
	TotalText   string
}

type MonthlySummary struct {
	Rows []MonthlyRow
}
