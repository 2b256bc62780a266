package duty

import (
	"sort"
	"strings"
	"time"

	"github.com/gsh-hris/roster-backend-go/internal/domain/duty"
	"github.com/gsh-hris/roster-backend-go/internal/domain/employee"
)

// UnknownEmployeeName is the placeholder for an assignment whose
// employee resolves neither from its snapshot nor from the roster.
const UnknownEmployeeName = "Unknown Employee"

var categoryRank = map[duty.DisplayCategory]int{
	duty.CategoryDuty:       1,
	duty.CategoryLeave:      2,
	duty.CategoryOff:        3,
	duty.CategoryHolidayOff: 4,
	duty.CategoryUnknown:    5,
}

// GroupDay groups one date's assignments by resolved shift or category
// and orders groups and members deterministically. A duplicated
// employee on one date resolves last-wins; a date with no assignments
// yields an empty list.
func GroupDay(date time.Time, assignments []duty.EmployeeAssignment, catalogs duty.Catalogs, roster employee.Roster) []duty.DayGroup {
	members := projectMembers(assignments, catalogs, roster)
	sortMembers(members)
	groups := accumulateGroups(members)
	orderGroups(groups)
	return groups
}

func projectMembers(assignments []duty.EmployeeAssignment, catalogs duty.Catalogs, roster employee.Roster) []duty.GroupMember {
	// Last-wins: upstream editors replace in place on a duplicate
	// employee key, so a later assignment supersedes an earlier one.
	ordered := make([]duty.GroupMember, 0, len(assignments))
	position := make(map[string]int, len(assignments))

	for _, a := range assignments {
		member := duty.GroupMember{
			EmployeeID:      a.Employee.ID,
			Remarks:         a.Remarks,
			ResolvedDisplay: ResolveDisplay(a, catalogs),
		}
		member.DisplayName, member.LastName = employeeName(a.Employee, roster)

		if at, seen := position[a.Employee.ID]; seen && a.Employee.ID != "" {
			ordered[at] = member
			continue
		}
		position[a.Employee.ID] = len(ordered)
		ordered = append(ordered, member)
	}
	return ordered
}

// employeeName resolves display and last names, snapshot-first. The
// display form is "{lastName}, {F}." with the first initial uppercased.
func employeeName(ref duty.EmployeeRef, roster employee.Roster) (displayName, lastName string) {
	var first string
	switch {
	case ref.Snapshot != nil:
		lastName = ref.Snapshot.LastName
		first = ref.Snapshot.FirstName
	default:
		emp, ok := roster[ref.ID]
		if !ok {
			return UnknownEmployeeName, ""
		}
		lastName = emp.LastName
		first = emp.FirstName
	}

	if lastName == "" && first == "" {
		return UnknownEmployeeName, ""
	}
	if first == "" {
		return lastName, lastName
	}
	initial := strings.ToUpper(first[:1])
	return lastName + ", " + initial + ".", lastName
}

// sortMembers applies the stable total order: category rank, then duty
// start time ascending with unresolvable starts last, then last name.
func sortMembers(members []duty.GroupMember) {
	sort.SliceStable(members, func(i, j int) bool {
		a, b := members[i], members[j]
		if categoryRank[a.Category] != categoryRank[b.Category] {
			return categoryRank[a.Category] < categoryRank[b.Category]
		}
		if a.Category == duty.CategoryDuty && a.SortStartMinutes != b.SortStartMinutes {
			return a.SortStartMinutes < b.SortStartMinutes
		}
		return strings.ToLower(a.LastName) < strings.ToLower(b.LastName)
	})
}

// accumulateGroups builds groups in member insertion order; ordering is
// a separate pass. Duty groups by the lowercase shift label, every
// leave assignment lands in the single LEAVE group, off and holiday-off
// each form one group.
func accumulateGroups(members []duty.GroupMember) []duty.DayGroup {
	groups := []duty.DayGroup{}
	index := map[string]int{}

	for _, m := range members {
		key := string(m.Category) + "|" + m.GroupKey
		at, ok := index[key]
		if !ok {
			at = len(groups)
			index[key] = at
			groups = append(groups, duty.DayGroup{
				GroupKey: m.GroupKey,
				Label:    m.Label,
				Category: m.Category,
				ColorKey: m.ColorKey,
			})
		}
		groups[at].Members = append(groups[at].Members, m)
	}
	return groups
}

func orderGroups(groups []duty.DayGroup) {
	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if categoryRank[a.Category] != categoryRank[b.Category] {
			return categoryRank[a.Category] < categoryRank[b.Category]
		}
		sa, sb := groupMinStart(a), groupMinStart(b)
		if a.Category == duty.CategoryDuty && sa != sb {
			return sa < sb
		}
		return a.Label < b.Label
	})

	// Within-group order is last name, independent of the pre-group sort.
	for i := range groups {
		members := groups[i].Members
		sort.SliceStable(members, func(a, b int) bool {
			return strings.ToLower(members[a].LastName) < strings.ToLower(members[b].LastName)
		})
	}
}

func groupMinStart(g duty.DayGroup) int {
	min := sortStartUnknown
	for _, m := range g.Members {
		if m.SortStartMinutes < min {
			min = m.SortStartMinutes
		}
	}
	return min
}
