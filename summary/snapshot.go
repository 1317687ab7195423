package summary

import (
	"sort"

	"github.com/epimonitor/epimonitor-api/schema"
)

// CountrySnapshot collapses the filtered records to one row per country.
// Latest mode keeps each country's own most recent in-range date - not the
// globally latest date, since countries stop reporting at different times.
// Accumulated mode sums each country's values across the whole range. The
// two modes are alternative readings of the same dataset, never combined.
func CountrySnapshot(records []schema.DailyRecord, f Filter) []schema.CountryTotal {
	switch f.Mode {
	case schema.SummaryAccumulated:
		return accumulatedSnapshot(records, f)
	default:
		return latestSnapshot(records, f)
	}
}

func accumulatedSnapshot(records []schema.DailyRecord, f Filter) []schema.CountryTotal {
	byCountry := make(map[string]*schema.CountryTotal)
	for _, r := range f.Apply(records) {
		t, ok := byCountry[r.Country]
		if !ok {
			t = &schema.CountryTotal{Country: r.Country, Continent: r.Continent}
			byCountry[r.Country] = t
		}
		t.Confirmed += r.Confirmed
		t.Deaths += r.Deaths
		t.Recovered += r.Recovered
		t.Active += r.Active
	}
	return sortSnapshot(byCountry)
}

func latestSnapshot(records []schema.DailyRecord, f Filter) []schema.CountryTotal {
	// a country may report several province rows on its latest day; they
	// collapse into one summed row
	latest := make(map[string]int64)
	for _, r := range f.Apply(records) {
		if ts, ok := latest[r.Country]; !ok || r.Date.Unix() > ts {
			latest[r.Country] = r.Date.Unix()
		}
	}

	byCountry := make(map[string]*schema.CountryTotal)
	for _, r := range f.Apply(records) {
		if r.Date.Unix() != latest[r.Country] {
			continue
		}
		t, ok := byCountry[r.Country]
		if !ok {
			t = &schema.CountryTotal{Country: r.Country, Continent: r.Continent}
			byCountry[r.Country] = t
		}
		t.Confirmed += r.Confirmed
		t.Deaths += r.Deaths
		t.Recovered += r.Recovered
		t.Active += r.Active
	}
	return sortSnapshot(byCountry)
}

func sortSnapshot(byCountry map[string]*schema.CountryTotal) []schema.CountryTotal {
	out := make([]schema.CountryTotal, 0, len(byCountry))
	for _, t := range byCountry {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Confirmed != out[j].Confirmed {
			return out[i].Confirmed > out[j].Confirmed
		}
		return out[i].Country < out[j].Country
	})
	return out
}
