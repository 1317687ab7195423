package summary

import (
	"time"

	"github.com/epimonitor/epimonitor-api/consts"
	"github.com/epimonitor/epimonitor-api/schema"
)

// Filter - the slice of the unified dataset a summary is computed over:
// one country or all of them, an optional continent subset, and a closed
// date range.
type Filter struct {
	Country    string
	Continents []string
	Start      time.Time
	End        time.Time
	Mode       schema.SummaryMode
}

// AllCountries reports whether the filter selects every country.
func (f Filter) AllCountries() bool {
	return f.Country == "" || f.Country == consts.AllCountries
}

func (f Filter) match(r schema.DailyRecord) bool {
	if !f.AllCountries() && r.Country != f.Country {
		return false
	}
	if len(f.Continents) > 0 && !contains(f.Continents, r.Continent) {
		return false
	}
	if !f.Start.IsZero() && r.Date.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && r.Date.After(f.End) {
		return false
	}
	return true
}

// Apply returns the records admitted by the filter, in source order.
func (f Filter) Apply(records []schema.DailyRecord) []schema.DailyRecord {
	var out []schema.DailyRecord
	for _, r := range records {
		if f.match(r) {
			out = append(out, r)
		}
	}
	return out
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
