package duty

import (
	"testing"

	"github.com/gsh-hris/roster-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
)

func standardDayShift() *shift.Template {
	return &shift.Template{
		Name:         "Day Shift",
		Category:     shift.CategoryStandard,
		MorningIn:    "08:00",
		MorningOut:   "12:00",
		AfternoonIn:  "13:00",
		AfternoonOut: "17:00",
		Status:       shift.StatusActive,
	}
}

func TestComputeShiftHoursStandard(t *testing.T) {
	h := ComputeShiftHours(standardDayShift())
	assert.False(t, h.Off)
	assert.True(t, h.Valid)
	assert.Equal(t, 8.0, h.Hours)
}

func TestComputeShiftHoursStandardHalfHours(t *testing.T) {
	tpl := standardDayShift()
	tpl.AfternoonOut = "17:30"
	h := ComputeShiftHours(tpl)
	assert.True(t, h.Valid)
	assert.Equal(t, 8.5, h.Hours)
}

func TestComputeShiftHoursOvernight(t *testing.T) {
	tpl := &shift.Template{
		Name:      "Night Shift",
		Category:  shift.CategoryShifting,
		StartTime: "22:00",
		EndTime:   "06:00",
		Status:    shift.StatusActive,
	}
	h := ComputeShiftHours(tpl)
	assert.True(t, h.Valid)
	assert.Equal(t, 8.0, h.Hours)
}

func TestComputeShiftHoursSameDayBlock(t *testing.T) {
	tpl := &shift.Template{
		Category:  shift.CategoryShifting,
		StartTime: "06:00",
		EndTime:   "18:00",
		Status:    shift.StatusActive,
	}
	h := ComputeShiftHours(tpl)
	assert.True(t, h.Valid)
	assert.Equal(t, 12.0, h.Hours)
}

func TestComputeShiftHoursOff(t *testing.T) {
	assert.True(t, ComputeShiftHours(nil).Off)

	tpl := standardDayShift()
	tpl.Status = shift.StatusOff
	assert.True(t, ComputeShiftHours(tpl).Off)
}

func TestComputeShiftHoursMalformedTimes(t *testing.T) {
	tpl := standardDayShift()
	tpl.MorningIn = "25:99"
	h := ComputeShiftHours(tpl)
	assert.False(t, h.Off)
	assert.False(t, h.Valid)

	single := &shift.Template{
		Category:  shift.CategoryShifting,
		StartTime: "start",
		EndTime:   "06:00",
		Status:    shift.StatusActive,
	}
	h = ComputeShiftHours(single)
	assert.False(t, h.Valid)
}

func TestFormatHoursAndMinutes(t *testing.T) {
	assert.Equal(t, "8 h", FormatHoursAndMinutes(8))
	assert.Equal(t, "8 h 30 min", FormatHoursAndMinutes(8.5))
	assert.Equal(t, "15 min", FormatHoursAndMinutes(0.25))
	assert.Equal(t, "0 min", FormatHoursAndMinutes(0))
	assert.Equal(t, "160 h", FormatHoursAndMinutes(160))
	assert.Equal(t, "1 h 1 min", FormatHoursAndMinutes(61.0/60.0))
}
