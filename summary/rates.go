package summary

import "github.com/epimonitor/epimonitor-api/schema"

// GrowthRate - percentage change of confirmed cases between the two most
// recent points of a date series. A zero previous value yields zero: a
// policy choice to keep the first reporting day from looking like an
// infinite jump, not a mathematical identity.
func GrowthRate(series []schema.DatePoint) float64 {
	if len(series) < 2 {
		return 0
	}
	latest := float64(series[len(series)-1].Confirmed)
	previous := float64(series[len(series)-2].Confirmed)
	if previous == 0 {
		return 0
	}
	return (latest - previous) / previous * 100
}

// Trend classifies the active-case direction by the strict sign of the
// difference between the last and first point of the series.
func Trend(series []schema.DatePoint) string {
	if len(series) == 0 {
		return schema.TrendStable
	}
	delta := series[len(series)-1].Active - series[0].Active
	switch {
	case delta > 0:
		return schema.TrendIncreasing
	case delta < 0:
		return schema.TrendDecreasing
	default:
		return schema.TrendStable
	}
}

// Rate - part over whole as a percentage, zero when the whole is zero.
// Shared by the fatality and recovery rates.
func Rate(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
