package duty

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gsh-hris/roster-backend-go/internal/domain/duty"
	"github.com/gsh-hris/roster-backend-go/internal/domain/employee"
	"github.com/gsh-hris/roster-backend-go/internal/pkg/dateutil"
)

// entryIndex maps civil-date strings to that date's assignments.
func entryIndex(entries []duty.ScheduleEntry) map[string][]duty.EmployeeAssignment {
	index := make(map[string][]duty.EmployeeAssignment, len(entries))
	for _, e := range entries {
		index[dateutil.Datestamp(e.Date)] = e.Assignments
	}
	return index
}

// BuildDayViews composes the grouped calendar: one DayView per calendar
// day, in date order, each holding that date's ordered assignment groups.
func BuildDayViews(days []duty.CalendarDay, entries []duty.ScheduleEntry, catalogs duty.Catalogs, roster employee.Roster) []duty.DayView {
	index := entryIndex(entries)
	views := make([]duty.DayView, 0, len(days))
	for _, day := range days {
		views = append(views, duty.DayView{
			Day:    day,
			Groups: GroupDay(day.Date, index[day.Datestamp], catalogs, roster),
		})
	}
	return views
}

// knownEmployee is one employee appearing anywhere in the period.
type knownEmployee struct {
	id          string
	displayName string
	lastName    string
}

// knownEmployees is the union of employees across every assignment in
// the entry set, ordered by last name. An employee with only off days
// still appears; omission would read as a missing person on summaries.
func knownEmployees(entries []duty.ScheduleEntry, roster employee.Roster) []knownEmployee {
	seen := map[string]bool{}
	known := []knownEmployee{}
	for _, e := range entries {
		for _, a := range e.Assignments {
			if a.Employee.ID == "" || seen[a.Employee.ID] {
				continue
			}
			seen[a.Employee.ID] = true
			displayName, lastName := employeeName(a.Employee, roster)
			known = append(known, knownEmployee{
				id:          a.Employee.ID,
				displayName: displayName,
				lastName:    lastName,
			})
		}
	}
	sort.SliceStable(known, func(i, j int) bool {
		a, b := known[i], known[j]
		if la, lb := strings.ToLower(a.lastName), strings.ToLower(b.lastName); la != lb {
			return la < lb
		}
		return a.id < b.id
	})
	return known
}

// dutyHoursFor computes the hour cell for one employee on one date.
func dutyHoursFor(assignments []duty.EmployeeAssignment, employeeID string, catalogs duty.Catalogs) duty.HourCell {
	var found *duty.EmployeeAssignment
	for i := range assignments {
		if assignments[i].Employee.ID == employeeID {
			found = &assignments[i] // last-wins on duplicates
		}
	}
	if found == nil {
		return duty.HourCell{}
	}

	switch found.Kind {
	case duty.KindOff, duty.KindHolidayOff:
		return duty.HourCell{Text: HoursOff}
	case duty.KindDuty:
		template, ok := found.Shift.Resolve(catalogs.Shifts)
		if !ok {
			return duty.HourCell{}
		}
		h := ComputeShiftHours(&template)
		if h.Off {
			return duty.HourCell{Text: HoursOff}
		}
		if !h.Valid {
			return duty.HourCell{}
		}
		return duty.HourCell{
			Text:    formatHoursNumber(h.Hours),
			Hours:   h.Hours,
			Numeric: true,
		}
	default:
		// Leave days carry no duty hours.
		return duty.HourCell{}
	}
}

func formatHoursNumber(hours float64) string {
	text := strconv.FormatFloat(hours, 'f', 2, 64)
	text = strings.TrimRight(text, "0")
	return strings.TrimRight(text, ".")
}

// BuildWeeklySummary lays the period out as 7-wide week bands and fills
// one row per known employee per band: a numeric hour cell for each
// duty day, the off sentinel for explicit off days, blank otherwise.
// Row totals sum only the numeric cells.
func BuildWeeklySummary(days []duty.CalendarDay, entries []duty.ScheduleEntry, roster employee.Roster, catalogs duty.Catalogs) duty.WeeklySummary {
	index := entryIndex(entries)
	known := knownEmployees(entries, roster)
	summary := duty.WeeklySummary{}

	for _, week := range BuildWeekRows(days) {
		block := duty.WeekBlock{Days: week}
		for _, emp := range known {
			row := duty.WeekRow{
				EmployeeID:  emp.id,
				DisplayName: emp.displayName,
				Cells:       make([]duty.HourCell, 0, 7),
			}
			for _, slot := range week {
				if slot == nil {
					row.Cells = append(row.Cells, duty.HourCell{})
					continue
				}
				cell := dutyHoursFor(index[slot.Datestamp], emp.id, catalogs)
				row.Cells = append(row.Cells, cell)
				if cell.Numeric {
					row.TotalHours += cell.Hours
				}
			}
			row.TotalText = FormatHoursAndMinutes(row.TotalHours)
			block.Rows = append(block.Rows, row)
		}
		summary.Weeks = append(summary.Weeks, block)
	}
	return summary
}

// BuildMonthlySummary accumulates duty hours over every day of the full
// period in a single pass. It deliberately does not sum the weekly row
// totals; week bands carry padding slots at period boundaries.
func BuildMonthlySummary(days []duty.CalendarDay, entries []duty.ScheduleEntry, roster employee.Roster, catalogs duty.Catalogs) duty.MonthlySummary {
	index := entryIndex(entries)
	known := knownEmployees(entries, roster)
	summary := duty.MonthlySummary{}

	for _, emp := range known {
		row := duty.MonthlyRow{
			EmployeeID:  emp.id,
			DisplayName: emp.displayName,
		}
		for _, day := range days {
			cell := dutyHoursFor(index[day.Datestamp], emp.id, catalogs)
			if cell.Numeric {
				row.TotalHours += cell.Hours
			}
		}
		row.TotalText = FormatHoursAndMinutes(row.TotalHours)
		summary.Rows = append(summary.Rows, row)
	}
	return summary
}
