package duty

import (
	"time"

	"github.com/gsh-hris/roster-backend-go/internal/domain/duty"
	"github.com/gsh-hris/roster-backend-go/internal/domain/holiday"
	"github.com/gsh-hris/roster-backend-go/internal/pkg/dateutil"
)

// Calendar is the day skeleton for one pay period. The period is always
// the full calendar month containing the reference date.
type Calendar struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
	Days        []duty.CalendarDay
}

// BuildCalendar computes every day of the month containing referenceDate
// in ascending order, with weekend and holiday flags attached. An
// unparseable reference date fails with ErrInvalidDate; the builder never
// substitutes a default.
func BuildCalendar(referenceDate string, holidays holiday.Set) (Calendar, error) {
	ref, err := dateutil.ParseDate(referenceDate)
	if err != nil {
		return Calendar{}, duty.ErrInvalidDate
	}

	start, end := dateutil.MonthPeriod(ref)
	cal := Calendar{PeriodStart: start, PeriodEnd: end}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		cal.Days = append(cal.Days, ClassifyDay(d, holidays))
	}
	return cal, nil
}

// BuildWeekRows partitions days into rows of exactly 7 slots, left-padding
// the first row up to the weekday of days[0] (Sunday = 0) and right-padding
// the last. Nil slots are blank grid cells and never carry a date.
func BuildWeekRows(days []duty.CalendarDay) [][]*duty.CalendarDay {
	if len(days) == 0 {
		return nil
	}

	rows := [][]*duty.CalendarDay{}
	row := make([]*duty.CalendarDay, 0, 7)

	lead := int(days[0].Date.In(dateutil.Hospital).Weekday())
	for i := 0; i < lead; i++ {
		row = append(row, nil)
	}

	for i := range days {
		row = append(row, &days[i])
		if len(row) == 7 {
			rows = append(rows, row)
			row = make([]*duty.CalendarDay, 0, 7)
		}
	}

	if len(row) > 0 {
		for len(row) < 7 {
			row = append(row, nil)
		}
		rows = append(rows, row)
	}
	return rows
}
