package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatestampNormalizesUTCMidnight(t *testing.T) {
	// Holiday feeds store UTC midnight. In the hospital calendar that
	// instant is 8 AM of the same civil day, never the day before.
	utcMidnight := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-31", Datestamp(utcMidnight))

	localMidnight := time.Date(2025, 3, 31, 0, 0, 0, 0, Hospital)
	assert.Equal(t, "2025-03-31", Datestamp(localMidnight))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.June, parsed.Month())
	assert.Equal(t, 15, parsed.Day())
	assert.Equal(t, "2025-06-15", Datestamp(parsed))

	_, err = ParseDate("15/06/2025")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestParseClock(t *testing.T) {
	minutes, err := ParseClock("08:30")
	require.NoError(t, err)
	assert.Equal(t, 510, minutes)

	minutes, err = ParseClock("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, minutes)

	minutes, err = ParseClock("23:59")
	require.NoError(t, err)
	assert.Equal(t, 1439, minutes)

	for _, bad := range []string{"24:00", "12:60", "8", "ab:cd", ""} {
		_, err := ParseClock(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestFormatClock12(t *testing.T) {
	assert.Equal(t, "8:00 AM", FormatClock12("08:00"))
	assert.Equal(t, "12:00 PM", FormatClock12("12:00"))
	assert.Equal(t, "12:30 AM", FormatClock12("00:30"))
	assert.Equal(t, "5:15 PM", FormatClock12("17:15"))

	// Unparseable input passes through so broken templates still render.
	assert.Equal(t, "whenever", FormatClock12("whenever"))
}

func TestMonthPeriod(t *testing.T) {
	ref, err := ParseDate("2025-02-14")
	require.NoError(t, err)

	start, end := MonthPeriod(ref)
	assert.Equal(t, "2025-02-01", Datestamp(start))
	assert.Equal(t, "2025-02-28", Datestamp(end))

	dec, err := ParseDate("2025-12-31")
	require.NoError(t, err)
	start, end = MonthPeriod(dec)
	assert.Equal(t, "2025-12-01", Datestamp(start))
	assert.Equal(t, "2025-12-31", Datestamp(end))
}
