package duty

import (
	"testing"
	"time"

	"github.com/gsh-hris/roster-backend-go/internal/domain/holiday"
	"github.com/gsh-hris/roster-backend-go/internal/pkg/dateutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsWeekend(t *testing.T) {
	saturday, err := dateutil.ParseDate("2025-03-01")
	require.NoError(t, err)
	sunday, err := dateutil.ParseDate("2025-03-02")
	require.NoError(t, err)
	monday, err := dateutil.ParseDate("2025-03-03")
	require.NoError(t, err)

	assert.True(t, IsWeekend(saturday))
	assert.True(t, IsWeekend(sunday))
	assert.False(t, IsWeekend(monday))
}

func TestHolidayMatchingAcrossTimezones(t *testing.T) {
	// The holiday feed stores UTC midnight while the schedule date is
	// local midnight. Both are the same civil day to the classifier.
	holidays := holiday.SetOf([]holiday.Holiday{
		{
			Date: time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC),
			Name: "Araw ng Kagitingan",
			Type: "Regular Holiday",
		},
	})

	localDate, err := dateutil.ParseDate("2025-04-09")
	require.NoError(t, err)

	assert.True(t, IsHoliday(localDate, holidays))
	assert.Equal(t, "Araw ng Kagitingan (RH)", HolidayLabel(localDate, holidays))
	assert.True(t, ShouldMarkRed(localDate, holidays))

	dayAfter, err := dateutil.ParseDate("2025-04-10")
	require.NoError(t, err)
	assert.False(t, IsHoliday(dayAfter, holidays))
	assert.Equal(t, "", HolidayLabel(dayAfter, holidays))
}

func TestClassifyDay(t *testing.T) {
	holidays := holiday.SetOf([]holiday.Holiday{
		{
			Date: time.Date(2025, 12, 8, 0, 0, 0, 0, time.UTC),
			Name: "Immaculate Conception",
			Type: "Special Non-Working Holiday",
		},
	})

	holidayDate, err := dateutil.ParseDate("2025-12-08")
	require.NoError(t, err)
	day := ClassifyDay(holidayDate, holidays)
	assert.Equal(t, "2025-12-08", day.Datestamp)
	assert.False(t, day.IsWeekend)
	assert.True(t, day.IsHoliday)
	assert.Equal(t, "Immaculate Conception (SN)", day.HolidayLabel)
	assert.True(t, day.MarkRed)

	weekday, err := dateutil.ParseDate("2025-12-10")
	require.NoError(t, err)
	plain := ClassifyDay(weekday, holidays)
	assert.False(t, plain.IsHoliday)
	assert.False(t, plain.MarkRed)
	assert.Equal(t, "", plain.HolidayLabel)
}
