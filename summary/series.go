package summary

import (
	"sort"

	"github.com/epimonitor/epimonitor-api/schema"
)

// DateSeries sums the four metrics per date over the filtered records and
// returns the points sorted by date ascending. Fetch results arrive in
// worker completion order, so the sort here is load-bearing, not
// cosmetic.
func DateSeries(records []schema.DailyRecord, f Filter) []schema.DatePoint {
	byDate := make(map[int64]*schema.DatePoint)
	for _, r := range f.Apply(records) {
		key := r.Date.Unix()
		p, ok := byDate[key]
		if !ok {
			p = &schema.DatePoint{Date: r.Date}
			byDate[key] = p
		}
		p.Confirmed += r.Confirmed
		p.Deaths += r.Deaths
		p.Recovered += r.Recovered
		p.Active += r.Active
	}

	series := make([]schema.DatePoint, 0, len(byDate))
	for _, p := range byDate {
		series = append(series, *p)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})
	return series
}
