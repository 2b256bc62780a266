package duty

import (
	"testing"

	"github.com/gsh-hris/roster-backend-go/internal/domain/duty"
	"github.com/gsh-hris/roster-backend-go/internal/domain/holiday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCalendarCoversFullMonth(t *testing.T) {
	cal, err := BuildCalendar("2025-02-14", holiday.Set{})
	require.NoError(t, err)

	require.Len(t, cal.Days, 28)
	assert.Equal(t, "2025-02-01", cal.Days[0].Datestamp)
	assert.Equal(t, "2025-02-28", cal.Days[27].Datestamp)

	// Days are strictly ascending with no gaps.
	for i := 1; i < len(cal.Days); i++ {
		assert.Equal(t, cal.Days[i-1].Date.AddDate(0, 0, 1), cal.Days[i].Date)
	}
}

func TestBuildCalendarLeapMonth(t *testing.T) {
	cal, err := BuildCalendar("2024-02-01", holiday.Set{})
	require.NoError(t, err)
	assert.Len(t, cal.Days, 29)
}

func TestBuildCalendarInvalidDate(t *testing.T) {
	_, err := BuildCalendar("not-a-date", holiday.Set{})
	assert.ErrorIs(t, err, duty.ErrInvalidDate)

	_, err = BuildCalendar("", holiday.Set{})
	assert.ErrorIs(t, err, duty.ErrInvalidDate)
}

func TestBuildWeekRowsPadding(t *testing.T) {
	// March 2025 opens on a Saturday: six leading blanks, then 31 days.
	cal, err := BuildCalendar("2025-03-10", holiday.Set{})
	require.NoError(t, err)

	rows := BuildWeekRows(cal.Days)
	require.Len(t, rows, 6)

	for _, row := range rows {
		assert.Len(t, row, 7)
	}

	for i := 0; i < 6; i++ {
		assert.Nil(t, rows[0][i])
	}
	require.NotNil(t, rows[0][6])
	assert.Equal(t, "2025-03-01", rows[0][6].Datestamp)

	// Last row: Sunday the 30th, Monday the 31st, five trailing blanks.
	require.NotNil(t, rows[5][0])
	assert.Equal(t, "2025-03-30", rows[5][0].Datestamp)
	require.NotNil(t, rows[5][1])
	assert.Equal(t, "2025-03-31", rows[5][1].Datestamp)
	for i := 2; i < 7; i++ {
		assert.Nil(t, rows[5][i])
	}

	// Every calendar day appears exactly once, in order.
	var seen []string
	for _, row := range rows {
		for _, slot := range row {
			if slot != nil {
				seen = append(seen, slot.Datestamp)
			}
		}
	}
	require.Len(t, seen, 31)
	assert.Equal(t, "2025-03-01", seen[0])
	assert.Equal(t, "2025-03-31", seen[30])
}

func TestBuildWeekRowsEmpty(t *testing.T) {
	assert.Nil(t, BuildWeekRows(nil))
}
