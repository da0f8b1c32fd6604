package domain

import "strings"

// StatsFilter narrows the compensation set for statistics queries.
// All fields are optional; empty strings mean "no filter on this column".
type StatsFilter struct {
	Company  string
	Location string
	JobTitle string
}

// Normalize trims whitespace on all fields.
func (f *StatsFilter) Normalize() {
	f.Company = strings.TrimSpace(f.Company)
	f.Location = strings.TrimSpace(f.Location)
	f.JobTitle = strings.TrimSpace(f.JobTitle)
}

// IsEmpty reports whether no filter component is set.
func (f StatsFilter) IsEmpty() bool {
	return f.Company == "" && f.Location == "" && f.JobTitle == ""
}

// TitleTotal is one submission's total compensation (in minor units) tagged
// with its job title.
type TitleTotal struct {
	JobTitle string
	Total    int64
}
