package duty

import (
	"testing"

	"github.com/gsh-hris/roster-backend-go/internal/domain/duty"
	"github.com/gsh-hris/roster-backend-go/internal/domain/leave"
	"github.com/gsh-hris/roster-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotAssignmentsCapturesReferencedData(t *testing.T) {
	assignments := []duty.EmployeeAssignment{
		dutyAssignment("emp-alba", "shift-day"),
		leaveAssignment("emp-cruz", "leave-sick"),
	}

	SnapshotAssignments(assignments, testCatalogs(), testRoster())

	require.NotNil(t, assignments[0].Employee.Snapshot)
	assert.Equal(t, "Alba", assignments[0].Employee.Snapshot.LastName)
	assert.Equal(t, "Maria", assignments[0].Employee.Snapshot.FirstName)
	require.NotNil(t, assignments[0].Shift.Snapshot)
	assert.Equal(t, "Day Shift", assignments[0].Shift.Snapshot.Name)
	assert.Equal(t, "08:00", assignments[0].Shift.Snapshot.MorningIn)

	require.NotNil(t, assignments[1].Leave.Snapshot)
	assert.Equal(t, "Sick Leave", assignments[1].Leave.Snapshot.Name)
}

func TestSnapshotAssignmentsLeavesUnresolvableRefsBare(t *testing.T) {
	assignments := []duty.EmployeeAssignment{
		dutyAssignment("emp-ghost", "shift-retired"),
	}

	SnapshotAssignments(assignments, testCatalogs(), testRoster())

	assert.Nil(t, assignments[0].Employee.Snapshot)
	assert.Nil(t, assignments[0].Shift.Snapshot)
}

func TestSnapshottedAssignmentSurvivesTemplateEdit(t *testing.T) {
	assignments := []duty.EmployeeAssignment{
		dutyAssignment("emp-alba", "shift-day"),
	}
	catalogs := testCatalogs()
	SnapshotAssignments(assignments, catalogs, testRoster())

	// Shorten the template after the entry was saved. The resolved view
	// and the hour totals must keep the times as saved.
	edited := catalogs.Shifts["shift-day"]
	edited.AfternoonOut = "14:00"
	catalogs.Shifts["shift-day"] = edited

	rd := ResolveDisplay(assignments[0], catalogs)
	assert.Equal(t, "8:00 AM-12:00 PM, 1:00 PM-5:00 PM", rd.TimeRangeText)

	resolved, ok := assignments[0].Shift.Resolve(catalogs.Shifts)
	require.True(t, ok)
	hours := ComputeShiftHours(&resolved)
	require.True(t, hours.Valid)
	assert.InDelta(t, 8.0, hours.Hours, 0.001)
}

func TestSnapshottedAssignmentSurvivesTemplateDeletion(t *testing.T) {
	assignments := []duty.EmployeeAssignment{
		dutyAssignment("emp-alba", "shift-day"),
		leaveAssignment("emp-cruz", "leave-sick"),
	}
	catalogs := testCatalogs()
	SnapshotAssignments(assignments, catalogs, testRoster())

	// Deleting the templates removes them from the live catalog; saved
	// entries still resolve from their snapshots instead of degrading
	// to the unknown placeholder.
	emptied := duty.Catalogs{Shifts: shift.Catalog{}, Leaves: leave.Catalog{}}

	rd := ResolveDisplay(assignments[0], emptied)
	assert.Equal(t, "Day Shift", rd.Label)
	assert.Equal(t, duty.CategoryDuty, rd.Category)
	assert.Equal(t, "8:00 AM-12:00 PM, 1:00 PM-5:00 PM", rd.TimeRangeText)

	leaveDisplay := ResolveDisplay(assignments[1], emptied)
	assert.Equal(t, "SL", leaveDisplay.LeaveAbbrev)
}
