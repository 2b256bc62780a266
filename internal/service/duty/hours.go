package duty

import (
	"fmt"
	"math"

	"github.com/gsh-hris/roster-backend-go/internal/domain/shift"
	"github.com/gsh-hris/roster-backend-go/internal/pkg/dateutil"
)

// HoursOff is the sentinel rendered for an off template; it passes
// through summaries untouched and is excluded from every total.
const HoursOff = "off"

// ShiftHours is the result of one worked-hours computation.
type ShiftHours struct {
	// Off is set for an absent template or one with off status.
	Off bool
	// Valid is cleared when a time field failed HH:MM parsing; the
	// duration is then unavailable and excluded from sums.
	Valid bool
	// Hours is the worked time as a decimal, two-decimal precision.
	Hours float64
}

// ComputeShiftHours computes worked hours for one shift template.
// Standard templates sum the morning and afternoon blocks, which
// template authors supply as same-day ordered pairs. Single-block
// templates wrap across midnight: end at or before start adds a day.
func ComputeShiftHours(t *shift.Template) ShiftHours {
	if t == nil || t.Status == shift.StatusOff {
		return ShiftHours{Off: true}
	}

	if t.Category == shift.CategoryStandard {
		mi, err1 := dateutil.ParseClock(t.MorningIn)
		mo, err2 := dateutil.ParseClock(t.MorningOut)
		ai, err3 := dateutil.ParseClock(t.AfternoonIn)
		ao, err4 := dateutil.ParseClock(t.AfternoonOut)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			return ShiftHours{}
		}
		minutes := (mo - mi) + (ao - ai)
		return ShiftHours{Valid: true, Hours: roundHours(minutes)}
	}

	start, err1 := dateutil.ParseClock(t.StartTime)
	end, err2 := dateutil.ParseClock(t.EndTime)
	if err1 != nil || err2 != nil {
		return ShiftHours{}
	}
	minutes := end - start
	if minutes <= 0 {
		minutes += 24 * 60
	}
	return ShiftHours{Valid: true, Hours: roundHours(minutes)}
}

func roundHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*100) / 100
}

// FormatHoursAndMinutes renders a decimal hour count as "8 h",
// "8 h 30 min" or "15 min". Zero renders as "0 min".
func FormatHoursAndMinutes(hours float64) string {
	total := int(math.Round(hours * 60))
	h := total / 60
	m := total % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%d h %d min", h, m)
	case h > 0:
		return fmt.Sprintf("%d h", h)
	default:
		return fmt.Sprintf("%d min", m)
	}
}
