package duty

import (
	"testing"

	"github.com/gsh-hris/roster-backend-go/internal/domain/duty"
	"github.com/gsh-hris/roster-backend-go/internal/domain/leave"
	"github.com/gsh-hris/roster-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
)

func testCatalogs() duty.Catalogs {
	return duty.Catalogs{
		Shifts: shift.Catalog{
			"shift-day": {
				ID:           "shift-day",
				Name:         "Day Shift",
				Category:     shift.CategoryStandard,
				MorningIn:    "08:00",
				MorningOut:   "12:00",
				AfternoonIn:  "13:00",
				AfternoonOut: "17:00",
				ColorKey:     "blue",
				Status:       shift.StatusActive,
			},
			"shift-night": {
				ID:        "shift-night",
				Name:      "Night Shift",
				Category:  shift.CategoryShifting,
				StartTime: "22:00",
				EndTime:   "06:00",
				Status:    shift.StatusActive,
			},
		},
		Leaves: leave.Catalog{
			"leave-sick": {ID: "leave-sick", Name: "Sick Leave"},
		},
	}
}

func TestResolveDisplayDutyFromCatalog(t *testing.T) {
	rd := ResolveDisplay(duty.EmployeeAssignment{
		Employee: duty.EmployeeRef{ID: "emp-1"},
		Kind:     duty.KindDuty,
		Shift:    &duty.ShiftRef{ID: "shift-day"},
	}, testCatalogs())

	assert.Equal(t, "Day Shift", rd.Label)
	assert.Equal(t, "day shift", rd.GroupKey)
	assert.Equal(t, "8:00 AM-12:00 PM, 1:00 PM-5:00 PM", rd.TimeRangeText)
	assert.Equal(t, "blue", rd.ColorKey)
	assert.Equal(t, 480, rd.SortStartMinutes)
	assert.Equal(t, duty.CategoryDuty, rd.Category)
}

func TestResolveDisplaySnapshotWinsOverCatalog(t *testing.T) {
	// The snapshot carries the template as it was when the schedule was
	// saved; later catalog edits must not rewrite history.
	snapshot := &shift.Template{
		ID:        "shift-day",
		Name:      "Old Day Shift",
		Category:  shift.CategoryShifting,
		StartTime: "07:00",
		EndTime:   "15:00",
		Status:    shift.StatusActive,
	}
	rd := ResolveDisplay(duty.EmployeeAssignment{
		Employee: duty.EmployeeRef{ID: "emp-1"},
		Kind:     duty.KindDuty,
		Shift:    &duty.ShiftRef{ID: "shift-day", Snapshot: snapshot},
	}, testCatalogs())

	assert.Equal(t, "Old Day Shift", rd.Label)
	assert.Equal(t, "7:00 AM-3:00 PM", rd.TimeRangeText)
	assert.Equal(t, 420, rd.SortStartMinutes)
	assert.Equal(t, ColorDutyDefault, rd.ColorKey)
}

func TestResolveDisplayDutyUnresolvable(t *testing.T) {
	rd := ResolveDisplay(duty.EmployeeAssignment{
		Employee: duty.EmployeeRef{ID: "emp-1"},
		Kind:     duty.KindDuty,
		Shift:    &duty.ShiftRef{ID: "deleted-shift"},
	}, testCatalogs())

	assert.Equal(t, LabelUnknown, rd.Label)
	assert.Equal(t, duty.CategoryUnknown, rd.Category)
	assert.Equal(t, sortStartUnknown, rd.SortStartMinutes)
}

func TestResolveDisplayLeave(t *testing.T) {
	rd := ResolveDisplay(duty.EmployeeAssignment{
		Employee: duty.EmployeeRef{ID: "emp-1"},
		Kind:     duty.KindLeave,
		Leave:    &duty.LeaveRef{ID: "leave-sick"},
	}, testCatalogs())

	assert.Equal(t, LabelLeave, rd.Label)
	assert.Equal(t, duty.CategoryLeave, rd.Category)
	assert.Equal(t, ColorLeave, rd.ColorKey)
	assert.Equal(t, "Sick Leave", rd.LeaveTemplateName)
	assert.Equal(t, "SL", rd.LeaveAbbrev)
}

func TestResolveDisplayLeaveUnresolvable(t *testing.T) {
	rd := ResolveDisplay(duty.EmployeeAssignment{
		Employee: duty.EmployeeRef{ID: "emp-1"},
		Kind:     duty.KindLeave,
		Leave:    &duty.LeaveRef{ID: "gone"},
	}, testCatalogs())

	assert.Equal(t, LabelLeave, rd.Label)
	assert.Equal(t, LabelUnknown, rd.LeaveTemplateName)
	assert.Equal(t, LabelUnknown, rd.LeaveAbbrev)
}

func TestResolveDisplayOffKinds(t *testing.T) {
	off := ResolveDisplay(duty.EmployeeAssignment{
		Employee: duty.EmployeeRef{ID: "emp-1"},
		Kind:     duty.KindOff,
	}, testCatalogs())
	assert.Equal(t, LabelOff, off.Label)
	assert.Equal(t, ColorOff, off.ColorKey)
	assert.Equal(t, duty.CategoryOff, off.Category)

	holidayOff := ResolveDisplay(duty.EmployeeAssignment{
		Employee: duty.EmployeeRef{ID: "emp-1"},
		Kind:     duty.KindHolidayOff,
	}, testCatalogs())
	assert.Equal(t, LabelHolidayOff, holidayOff.Label)
	assert.Equal(t, ColorHolidayOff, holidayOff.ColorKey)
	assert.Equal(t, duty.CategoryHolidayOff, holidayOff.Category)
}

func TestLeaveAbbrev(t *testing.T) {
	cases := map[string]string{
		"Sick Leave":            "SL",
		"Vacation Leave":        "VL",
		"Maternity Leave":       "ML",
		"Furlough":              "FUR",
		"Special Christmas Day": "SCD",
		"PTO":                   "PTO",
		"on":                    "ON",
		"":                      "",
	}
	for name, want := range cases {
		assert.Equal(t, want, LeaveAbbrev(name), "name %q", name)
	}
}
