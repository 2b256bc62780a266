package leave

import "time"

// Template is one leave type as configured by HR (Sick Leave, Vacation
// Leave, ...). The short abbreviation shown on the calendar is derived
// from the name at display time.
type Template struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

type Catalog map[string]Template

func CatalogOf(templates []Template) Catalog {
	catalog := make(Catalog, len(templates))
	for _, t := range templates {
		catalog[t.ID] = t
	}
	return catalog
}
