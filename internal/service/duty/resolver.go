package duty

import (
	"fmt"
	"strings"

	"github.com/gsh-hris/roster-backend-go/internal/domain/duty"
	"github.com/gsh-hris/roster-backend-go/internal/domain/shift"
	"github.com/gsh-hris/roster-backend-go/internal/pkg/dateutil"
)

// Display color keys. Duty shifts take the template's own color when it
// resolves.
const (
	ColorDutyDefault = "primary"
	ColorLeave       = "caution"
	ColorOff         = "neutral"
	ColorHolidayOff  = "warning"
)

const (
	LabelUnknown    = "N/A"
	LabelLeave      = "LEAVE"
	LabelOff        = "Day Off"
	LabelHolidayOff = "Holiday Off"
)

// sortStartUnknown sorts duty assignments with no resolvable start time
// after every real start time. Non-duty categories also carry it; their
// ordering is governed by category rank alone.
const sortStartUnknown = 1 << 30

// ResolveDisplay normalizes one assignment into its display descriptor.
// Resolution is snapshot-first: an inlined template wins over the
// catalog lookup. A reference that resolves nowhere degrades to the
// "unknown" category with the N/A label instead of failing, so partial
// data never breaks a calendar render.
func ResolveDisplay(a duty.EmployeeAssignment, catalogs duty.Catalogs) duty.ResolvedDisplay {
	switch a.Kind {
	case duty.KindDuty:
		t, ok := a.Shift.Resolve(catalogs.Shifts)
		if !ok {
			return unknownDisplay()
		}
		color := t.ColorKey
		if color == "" {
			color = ColorDutyDefault
		}
		return duty.ResolvedDisplay{
			Label:            t.Name,
			GroupKey:         strings.ToLower(t.Name),
			TimeRangeText:    shiftTimeRange(t),
			ColorKey:         color,
			SortStartMinutes: shiftSortStart(t),
			Category:         duty.CategoryDuty,
		}

	case duty.KindLeave:
		rd := duty.ResolvedDisplay{
			Label:            LabelLeave,
			GroupKey:         LabelLeave,
			ColorKey:         ColorLeave,
			SortStartMinutes: sortStartUnknown,
			Category:         duty.CategoryLeave,
		}
		if t, ok := a.Leave.Resolve(catalogs.Leaves); ok {
			rd.LeaveTemplateName = t.Name
			rd.LeaveAbbrev = LeaveAbbrev(t.Name)
		} else {
			rd.LeaveTemplateName = LabelUnknown
			rd.LeaveAbbrev = LabelUnknown
		}
		return rd

	case duty.KindOff:
		return duty.ResolvedDisplay{
			Label:            LabelOff,
			GroupKey:         LabelOff,
			ColorKey:         ColorOff,
			SortStartMinutes: sortStartUnknown,
			Category:         duty.CategoryOff,
		}

	case duty.KindHolidayOff:
		return duty.ResolvedDisplay{
			Label:            LabelHolidayOff,
			GroupKey:         LabelHolidayOff,
			ColorKey:         ColorHolidayOff,
			SortStartMinutes: sortStartUnknown,
			Category:         duty.CategoryHolidayOff,
		}

	default:
		return unknownDisplay()
	}
}

func unknownDisplay() duty.ResolvedDisplay {
	return duty.ResolvedDisplay{
		Label:            LabelUnknown,
		GroupKey:         LabelUnknown,
		ColorKey:         ColorDutyDefault,
		SortStartMinutes: sortStartUnknown,
		Category:         duty.CategoryUnknown,
	}
}

func shiftTimeRange(t shift.Template) string {
	if t.Category == shift.CategoryStandard {
		return fmt.Sprintf("%s-%s, %s-%s",
			dateutil.FormatClock12(t.MorningIn),
			dateutil.FormatClock12(t.MorningOut),
			dateutil.FormatClock12(t.AfternoonIn),
			dateutil.FormatClock12(t.AfternoonOut),
		)
	}
	return fmt.Sprintf("%s-%s",
		dateutil.FormatClock12(t.StartTime),
		dateutil.FormatClock12(t.EndTime),
	)
}

// shiftSortStart is minutes-since-midnight of the shift's first clock-in,
// used only for ordering. Off-status and malformed templates sort last.
func shiftSortStart(t shift.Template) int {
	if t.Status == shift.StatusOff {
		return sortStartUnknown
	}
	raw := t.StartTime
	if t.Category == shift.CategoryStandard {
		raw = t.MorningIn
	}
	minutes, err := dateutil.ParseClock(raw)
	if err != nil {
		return sortStartUnknown
	}
	return minutes
}

// leaveAbbrevTable covers the leave types HR configures in practice.
var leaveAbbrevTable = map[string]string{
	"sick leave":         "SL",
	"vacation leave":     "VL",
	"maternity leave":    "ML",
	"paternity leave":    "PL",
	"emergency leave":    "EL",
	"bereavement leave":  "BL",
	"special leave":      "SPL",
	"study leave":        "STL",
	"compensatory leave": "CL",
	"personal leave":     "PL",
	"annual leave":       "AL",
	"casual leave":       "CL",
}

// LeaveAbbrev derives the short marker for a leave-type name. Known
// types use the fixed table; otherwise a single word takes its first
// three letters and a multi-word name takes its initials. Best effort,
// collisions are accepted.
func LeaveAbbrev(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return ""
	}
	if abbrev, ok := leaveAbbrevTable[normalized]; ok {
		return abbrev
	}

	words := strings.Fields(normalized)
	if len(words) == 1 {
		word := words[0]
		n := 3
		if len(word) < n {
			n = len(word)
		}
		return strings.ToUpper(word[:n])
	}

	var b strings.Builder
	for _, w := range words {
		b.WriteByte(w[0])
	}
	return strings.ToUpper(b.String())
}
