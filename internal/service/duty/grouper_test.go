package duty

import (
	"testing"

	"github.com/gsh-hris/roster-backend-go/internal/domain/duty"
	"github.com/gsh-hris/roster-backend-go/internal/domain/employee"
	"github.com/gsh-hris/roster-backend-go/internal/pkg/dateutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster() employee.Roster {
	return employee.ByID([]employee.Employee{
		{ID: "emp-alba", LastName: "Alba", FirstName: "Maria"},
		{ID: "emp-cruz", LastName: "Cruz", FirstName: "Juan"},
		{ID: "emp-reyes", LastName: "Reyes", FirstName: "Ana"},
	})
}

func dutyAssignment(employeeID, shiftID string) duty.EmployeeAssignment {
	return duty.EmployeeAssignment{
		Employee: duty.EmployeeRef{ID: employeeID},
		Kind:     duty.KindDuty,
		Shift:    &duty.ShiftRef{ID: shiftID},
	}
}

func leaveAssignment(employeeID, leaveID string) duty.EmployeeAssignment {
	return duty.EmployeeAssignment{
		Employee: duty.EmployeeRef{ID: employeeID},
		Kind:     duty.KindLeave,
		Leave:    &duty.LeaveRef{ID: leaveID},
	}
}

func TestGroupDayGroupsByShiftAndSortsMembers(t *testing.T) {
	date, err := dateutil.ParseDate("2025-03-03")
	require.NoError(t, err)

	groups := GroupDay(date, []duty.EmployeeAssignment{
		dutyAssignment("emp-cruz", "shift-day"),
		dutyAssignment("emp-reyes", "shift-night"),
		dutyAssignment("emp-alba", "shift-day"),
	}, testCatalogs(), testRoster())

	require.Len(t, groups, 2)

	// Day Shift starts at 08:00 and precedes the 22:00 Night Shift.
	assert.Equal(t, "day shift", groups[0].GroupKey)
	assert.Equal(t, "Day Shift", groups[0].Label)
	require.Len(t, groups[0].Members, 2)
	assert.Equal(t, "Alba, M.", groups[0].Members[0].DisplayName)
	assert.Equal(t, "Cruz, J.", groups[0].Members[1].DisplayName)

	assert.Equal(t, "Night Shift", groups[1].Label)
	require.Len(t, groups[1].Members, 1)
	assert.Equal(t, "Reyes, A.", groups[1].Members[0].DisplayName)
}

func TestGroupDayConsolidatesLeave(t *testing.T) {
	date, err := dateutil.ParseDate("2025-03-04")
	require.NoError(t, err)

	groups := GroupDay(date, []duty.EmployeeAssignment{
		leaveAssignment("emp-cruz", "leave-sick"),
		dutyAssignment("emp-alba", "shift-day"),
		leaveAssignment("emp-reyes", "missing-leave"),
	}, testCatalogs(), testRoster())

	require.Len(t, groups, 2)
	assert.Equal(t, duty.CategoryDuty, groups[0].Category)

	// All leave lands in one group regardless of leave type.
	leaveGroup := groups[1]
	assert.Equal(t, LabelLeave, leaveGroup.Label)
	require.Len(t, leaveGroup.Members, 2)
	assert.Equal(t, "Cruz, J.", leaveGroup.Members[0].DisplayName)
	assert.Equal(t, "SL", leaveGroup.Members[0].LeaveAbbrev)
	assert.Equal(t, "Reyes, A.", leaveGroup.Members[1].DisplayName)
	assert.Equal(t, LabelUnknown, leaveGroup.Members[1].LeaveAbbrev)
}

func TestGroupDayDuplicateEmployeeLastWins(t *testing.T) {
	date, err := dateutil.ParseDate("2025-03-05")
	require.NoError(t, err)

	groups := GroupDay(date, []duty.EmployeeAssignment{
		dutyAssignment("emp-alba", "shift-day"),
		dutyAssignment("emp-alba", "shift-night"),
	}, testCatalogs(), testRoster())

	require.Len(t, groups, 1)
	assert.Equal(t, "Night Shift", groups[0].Label)
	require.Len(t, groups[0].Members, 1)
	assert.Equal(t, "emp-alba", groups[0].Members[0].EmployeeID)
}

func TestGroupDayCategoryOrder(t *testing.T) {
	date, err := dateutil.ParseDate("2025-03-06")
	require.NoError(t, err)

	groups := GroupDay(date, []duty.EmployeeAssignment{
		{Employee: duty.EmployeeRef{ID: "emp-reyes"}, Kind: duty.KindHolidayOff},
		{Employee: duty.EmployeeRef{ID: "emp-cruz"}, Kind: duty.KindOff},
		leaveAssignment("emp-alba", "leave-sick"),
	}, testCatalogs(), testRoster())

	require.Len(t, groups, 3)
	assert.Equal(t, duty.CategoryLeave, groups[0].Category)
	assert.Equal(t, duty.CategoryOff, groups[1].Category)
	assert.Equal(t, duty.CategoryHolidayOff, groups[2].Category)
}

func TestGroupDaySnapshotNameBeatsRoster(t *testing.T) {
	date, err := dateutil.ParseDate("2025-03-07")
	require.NoError(t, err)

	a := dutyAssignment("emp-alba", "shift-day")
	a.Employee.Snapshot = &duty.EmployeeSnapshot{LastName: "Alba-Santos", FirstName: "Maria"}

	groups := GroupDay(date, []duty.EmployeeAssignment{a}, testCatalogs(), testRoster())
	require.Len(t, groups, 1)
	assert.Equal(t, "Alba-Santos, M.", groups[0].Members[0].DisplayName)
}

func TestGroupDayUnknownEmployee(t *testing.T) {
	date, err := dateutil.ParseDate("2025-03-08")
	require.NoError(t, err)

	groups := GroupDay(date, []duty.EmployeeAssignment{
		dutyAssignment("emp-ghost", "shift-day"),
	}, testCatalogs(), testRoster())

	require.Len(t, groups, 1)
	assert.Equal(t, UnknownEmployeeName, groups[0].Members[0].DisplayName)
}

func TestGroupDayEmpty(t *testing.T) {
	date, err := dateutil.ParseDate("2025-03-09")
	require.NoError(t, err)

	groups := GroupDay(date, nil, testCatalogs(), testRoster())
	assert.Empty(t, groups)
}
