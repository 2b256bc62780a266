package employee

import "time"

type Employee struct {
	ID         string
	EmployeeNo string
	LastName   string
	FirstName  string
	MiddleName *string
	Suffix     *string
	Position   *string
	Department *string
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Roster is the employee catalog keyed by id, as consumed by the duty
// calendar engine.
type Roster map[string]Employee

// ByID builds a Roster from a list.
func ByID(employees []Employee) Roster {
	roster := make(Roster, len(employees))
	for _, e := range employees {
		roster[e.ID] = e
	}
	return roster
}
