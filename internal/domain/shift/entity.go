package shift

import "time"

// Template describes one reusable shift definition. Standard templates
// carry a morning and an afternoon block; any other category carries a
// single start/end block, which may cross midnight.
type Template struct {
	ID       string
	Name     string
	Category Category

	// Standard category blocks, HH:MM.
	MorningIn    string
	MorningOut   string
	AfternoonIn  string
	AfternoonOut string

	// Non-standard single block, HH:MM.
	StartTime string
	EndTime   string

	ColorKey  string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

type Category string

const (
	CategoryStandard Category = "Standard"
	CategoryShifting Category = "Shifting"
)

type Status string

const (
	StatusActive Status = "active"
	StatusOff    Status = "off"
)

// Catalog is the template lookup used for reference resolution.
type Catalog map[string]Template

func CatalogOf(templates []Template) Catalog {
	catalog := make(Catalog, len(templates))
	for _, t := range templates {
		catalog[t.ID] = t
	}
	return catalog
}
