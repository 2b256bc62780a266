package holiday

import (
	"strings"
	"time"

	"github.com/gsh-hris/roster-backend-go/internal/pkg/dateutil"
)

type Holiday struct {
	ID        string
	Date      time.Time
	Name      string
	Type      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TypeAbbrev derives the 1-2 letter marker shown next to a holiday name.
func (h Holiday) TypeAbbrev() string {
	t := strings.ToLower(h.Type)
	switch {
	case strings.Contains(t, "regular"):
		return "RH"
	case strings.Contains(t, "special") && strings.Contains(t, "non-working"):
		return "SN"
	case strings.Contains(t, "special") && strings.Contains(t, "working"):
		return "SW"
	case strings.Contains(t, "local"):
		return "LH"
	default:
		return "H"
	}
}

// Set indexes holidays by civil-date string so lookups never compare
// raw instants. Dates from the holiday feed may carry UTC offsets.
type Set map[string]Holiday

func SetOf(holidays []Holiday) Set {
	set := make(Set, len(holidays))
	for _, h := range holidays {
		set[dateutil.Datestamp(h.Date)] = h
	}
	return set
}
