package summary

import (
	"fmt"

	"github.com/epimonitor/epimonitor-api/schema"
)

// ErrEmptyDataset - nothing survived the filter. Aggregation over an empty
// slice is a stop condition for consumers, never a silent zero table.
var ErrEmptyDataset = fmt.Errorf("no records match the requested filter")

// Summarize computes the full presentation-facing aggregate for one
// filter: the date-indexed series, the country-indexed snapshot under the
// requested mode, and the derived statistics. The fatality and recovery
// rates are computed over whichever totals the mode selects - the last
// in-range point for latest mode, the range sums for accumulated mode.
func Summarize(records []schema.DailyRecord, f Filter) (*schema.Summary, error) {
	series := DateSeries(records, f)
	if len(series) == 0 {
		return nil, ErrEmptyDataset
	}

	countries := CountrySnapshot(records, f)

	mode := f.Mode
	if mode == "" {
		mode = schema.SummaryLatest
	}

	totals := series[len(series)-1]
	if mode == schema.SummaryAccumulated {
		accumulated := schema.DatePoint{Date: totals.Date}
		for _, p := range series {
			accumulated.Confirmed += p.Confirmed
			accumulated.Deaths += p.Deaths
			accumulated.Recovered += p.Recovered
			accumulated.Active += p.Active
		}
		totals = accumulated
	}

	s := &schema.Summary{
		Mode:             mode,
		Totals:           totals,
		Series:           series,
		Countries:        countries,
		GrowthRate:       GrowthRate(series),
		Trend:            Trend(series),
		FatalityRate:     Rate(totals.Deaths, totals.Confirmed),
		RecoveryRate:     Rate(totals.Recovered, totals.Confirmed),
		RecoveredTracked: recoveredTracked(series),
	}
	if len(countries) > 0 {
		s.TopCountry = countries[0].Country
	}
	return s, nil
}

// recoveredTracked distinguishes "zero recovered" from "recovered not
// reported": a series that is zero across its full history means the
// source stopped tracking the metric.
func recoveredTracked(series []schema.DatePoint) bool {
	for _, p := range series {
		if p.Recovered > 0 {
			return true
		}
	}
	return false
}
