package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Hospital is the civil calendar every date comparison in the system is
// normalized to. Holiday feeds arrive as UTC midnight instants while
// user-entered dates are local midnight; both land on the same civil day
// once shifted into this zone.
var Hospital = time.FixedZone("Asia/Manila", 8*60*60)

const DateLayout = "2006-01-02"

// Datestamp normalizes an instant to its civil date in the hospital
// calendar. All cross-source date matching goes through this function.
func Datestamp(t time.Time) string {
	return t.In(Hospital).Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string as midnight in the hospital calendar.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), Hospital)
}

// ParseClock parses an HH:MM time-of-day string into minutes since midnight.
func ParseClock(s string) (int, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time of day %q out of range", s)
	}
	return h*60 + m, nil
}

// FormatClock12 renders an HH:MM string on a 12-hour clock ("8:00 AM").
// Unparseable input is returned unchanged.
func FormatClock12(s string) string {
	minutes, err := ParseClock(s)
	if err != nil {
		return strings.TrimSpace(s)
	}
	h := minutes / 60
	m := minutes % 60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, suffix)
}

// MonthPeriod returns the first and last day of the month containing t,
// both at midnight in the hospital calendar.
func MonthPeriod(t time.Time) (start, end time.Time) {
	local := t.In(Hospital)
	start = time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, Hospital)
	end = start.AddDate(0, 1, -1)
	return start, end
}
