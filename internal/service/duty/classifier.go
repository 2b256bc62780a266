package duty

import (
	"fmt"
	"time"

	"github.com/gsh-hris/roster-backend-go/internal/domain/duty"
	"github.com/gsh-hris/roster-backend-go/internal/domain/holiday"
	"github.com/gsh-hris/roster-backend-go/internal/pkg/dateutil"
)

// IsWeekend reports whether date falls on a Saturday or Sunday in the
// hospital calendar.
func IsWeekend(date time.Time) bool {
	wd := date.In(dateutil.Hospital).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsHoliday matches by normalized civil-date string, never by instant
// equality. Holiday feeds store UTC midnight while schedule dates are
// local midnight; both normalize to the same day.
func IsHoliday(date time.Time, holidays holiday.Set) bool {
	_, ok := holidays[dateutil.Datestamp(date)]
	return ok
}

// HolidayLabel returns "{name} ({abbrev})" for a holiday date, or ""
// when the date is not a holiday.
func HolidayLabel(date time.Time, holidays holiday.Set) string {
	h, ok := holidays[dateutil.Datestamp(date)]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s (%s)", h.Name, h.TypeAbbrev())
}

// ShouldMarkRed is the display-emphasis flag: weekend or holiday.
func ShouldMarkRed(date time.Time, holidays holiday.Set) bool {
	return IsWeekend(date) || IsHoliday(date, holidays)
}

// ClassifyDay builds the CalendarDay cell for one date.
func ClassifyDay(date time.Time, holidays holiday.Set) duty.CalendarDay {
	day := duty.CalendarDay{
		Date:      date,
		Datestamp: dateutil.Datestamp(date),
		IsWeekend: IsWeekend(date),
	}
	if h, ok := holidays[day.Datestamp]; ok {
		day.IsHoliday = true
		day.HolidayLabel = fmt.Sprintf("%s (%s)", h.Name, h.TypeAbbrev())
	}
	day.MarkRed = day.IsWeekend || day.IsHoliday
	return day
}
