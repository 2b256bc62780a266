package duty

import (
	"testing"
	"time"

	"github.com/gsh-hris/roster-backend-go/internal/domain/duty"
	"github.com/gsh-hris/roster-backend-go/internal/domain/holiday"
	"github.com/gsh-hris/roster-backend-go/internal/pkg/dateutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	date, err := dateutil.ParseDate(s)
	require.NoError(t, err)
	return date
}

func juneEntries(t *testing.T) []duty.ScheduleEntry {
	return []duty.ScheduleEntry{
		{
			Date: mustDate(t, "2025-06-02"),
			Assignments: []duty.EmployeeAssignment{
				dutyAssignment("emp-alba", "shift-day"),
				{Employee: duty.EmployeeRef{ID: "emp-cruz"}, Kind: duty.KindOff},
			},
		},
		{
			Date: mustDate(t, "2025-06-03"),
			Assignments: []duty.EmployeeAssignment{
				dutyAssignment("emp-alba", "shift-night"),
			},
		},
		{
			Date: mustDate(t, "2025-06-10"),
			Assignments: []duty.EmployeeAssignment{
				dutyAssignment("emp-alba", "shift-day"),
				leaveAssignment("emp-cruz", "leave-sick"),
			},
		},
	}
}

func TestBuildDayViews(t *testing.T) {
	cal, err := BuildCalendar("2025-06-01", holiday.Set{})
	require.NoError(t, err)

	views := BuildDayViews(cal.Days, juneEntries(t), testCatalogs(), testRoster())
	require.Len(t, views, 30)

	assert.Empty(t, views[0].Groups)

	june2 := views[1]
	assert.Equal(t, "2025-06-02", june2.Day.Datestamp)
	require.Len(t, june2.Groups, 2)
	assert.Equal(t, "Day Shift", june2.Groups[0].Label)
	assert.Equal(t, LabelOff, june2.Groups[1].Label)
}

func TestBuildWeeklySummary(t *testing.T) {
	// June 2025 opens on a Sunday, so the first band is June 1-7 with
	// no padding slots.
	cal, err := BuildCalendar("2025-06-01", holiday.Set{})
	require.NoError(t, err)

	summary := BuildWeeklySummary(cal.Days, juneEntries(t), testRoster(), testCatalogs())
	require.Len(t, summary.Weeks, 5)

	firstWeek := summary.Weeks[0]
	require.Len(t, firstWeek.Rows, 2)

	alba := firstWeek.Rows[0]
	assert.Equal(t, "Alba, M.", alba.DisplayName)
	require.Len(t, alba.Cells, 7)
	assert.True(t, alba.Cells[1].Numeric)
	assert.Equal(t, 8.0, alba.Cells[1].Hours)
	assert.Equal(t, "8", alba.Cells[1].Text)
	assert.True(t, alba.Cells[2].Numeric)
	assert.Equal(t, 16.0, alba.TotalHours)
	assert.Equal(t, "16 h", alba.TotalText)

	cruz := firstWeek.Rows[1]
	assert.Equal(t, "Cruz, J.", cruz.DisplayName)
	assert.Equal(t, HoursOff, cruz.Cells[1].Text)
	assert.False(t, cruz.Cells[1].Numeric)
	assert.Equal(t, 0.0, cruz.TotalHours)
	assert.Equal(t, "0 min", cruz.TotalText)

	// Second band: June 8-14. The leave day carries no duty hours.
	secondWeek := summary.Weeks[1]
	alba2 := secondWeek.Rows[0]
	assert.True(t, alba2.Cells[2].Numeric)
	assert.Equal(t, 8.0, alba2.TotalHours)
	cruz2 := secondWeek.Rows[1]
	assert.Equal(t, "", cruz2.Cells[2].Text)
	assert.False(t, cruz2.Cells[2].Numeric)
}

func TestBuildMonthlySummary(t *testing.T) {
	cal, err := BuildCalendar("2025-06-01", holiday.Set{})
	require.NoError(t, err)

	summary := BuildMonthlySummary(cal.Days, juneEntries(t), testRoster(), testCatalogs())
	require.Len(t, summary.Rows, 2)

	alba := summary.Rows[0]
	assert.Equal(t, "emp-alba", alba.EmployeeID)
	assert.Equal(t, 24.0, alba.TotalHours)
	assert.Equal(t, "24 h", alba.TotalText)

	cruz := summary.Rows[1]
	assert.Equal(t, 0.0, cruz.TotalHours)
	assert.Equal(t, "0 min", cruz.TotalText)
}

func TestBuildMonthlySummaryFullMonthOfStandardShifts(t *testing.T) {
	// June 2025: 21 weekdays, so 20 duty days at 8 h and the rest off
	// give the common full-time total of 160 h.
	cal, err := BuildCalendar("2025-06-01", holiday.Set{})
	require.NoError(t, err)

	var entries []duty.ScheduleEntry
	dutyDays := 0
	for _, day := range cal.Days {
		assignment := duty.EmployeeAssignment{
			Employee: duty.EmployeeRef{ID: "emp-alba"},
			Kind:     duty.KindOff,
		}
		if !day.IsWeekend && dutyDays < 20 {
			assignment = dutyAssignment("emp-alba", "shift-day")
			dutyDays++
		}
		entries = append(entries, duty.ScheduleEntry{
			Date:        mustDate(t, day.Datestamp),
			Assignments: []duty.EmployeeAssignment{assignment},
		})
	}
	require.Equal(t, 20, dutyDays)

	summary := BuildMonthlySummary(cal.Days, entries, testRoster(), testCatalogs())
	require.NotEmpty(t, summary.Rows)

	alba := summary.Rows[0]
	assert.Equal(t, "emp-alba", alba.EmployeeID)
	assert.Equal(t, 160.0, alba.TotalHours)
	assert.Equal(t, "160 h", alba.TotalText)
}

func TestFormatHoursNumberTrimsZeroes(t *testing.T) {
	assert.Equal(t, "8", formatHoursNumber(8))
	assert.Equal(t, "8.5", formatHoursNumber(8.5))
	assert.Equal(t, "7.75", formatHoursNumber(7.75))
}

func TestDutyHoursForDuplicateLastWins(t *testing.T) {
	assignments := []duty.EmployeeAssignment{
		dutyAssignment("emp-alba", "shift-day"),
		{Employee: duty.EmployeeRef{ID: "emp-alba"}, Kind: duty.KindOff},
	}
	cell := dutyHoursFor(assignments, "emp-alba", testCatalogs())
	assert.Equal(t, HoursOff, cell.Text)
	assert.False(t, cell.Numeric)
}

func TestDutyHoursForUnresolvableShift(t *testing.T) {
	assignments := []duty.EmployeeAssignment{
		dutyAssignment("emp-alba", "deleted-shift"),
	}
	cell := dutyHoursFor(assignments, "emp-alba", testCatalogs())
	assert.Equal(t, duty.HourCell{}, cell)
}
