package schema

import "time"

// SummaryMode - how the country snapshot collapses a date range.
type SummaryMode string

const (
	// SummaryLatest keeps each country's most recent in-range values.
	SummaryLatest SummaryMode = "latest"
	// SummaryAccumulated sums each country's values across the range.
	SummaryAccumulated SummaryMode = "accumulated"
)

// Trend labels for the active-case direction between the first and last
// date of a filtered series.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// DatePoint - the four metrics summed over one date.
type DatePoint struct {
	Date      time.Time `json:"date" bson:"date"`
	Confirmed int64     `json:"confirmed" bson:"confirmed"`
	Deaths    int64     `json:"deaths" bson:"deaths"`
	Recovered int64     `json:"recovered" bson:"recovered"`
	Active    int64     `json:"active" bson:"active"`
}

// CountryTotal - one country's row in the snapshot table.
type CountryTotal struct {
	Country   string `json:"country" bson:"country"`
	Continent string `json:"continent" bson:"continent"`
	Confirmed int64  `json:"confirmed" bson:"confirmed"`
	Deaths    int64  `json:"deaths" bson:"deaths"`
	Recovered int64  `json:"recovered" bson:"recovered"`
	Active    int64  `json:"active" bson:"active"`
}

// Summary - the aggregate handed to the presentation consumer.
type Summary struct {
	Mode         SummaryMode    `json:"mode"`
	Totals       DatePoint      `json:"totals"`
	Series       []DatePoint    `json:"series"`
	Countries    []CountryTotal `json:"countries"`
	GrowthRate   float64        `json:"growth_rate"`
	Trend        string         `json:"trend"`
	FatalityRate float64        `json:"fatality_rate"`
	RecoveryRate float64        `json:"recovery_rate"`
	TopCountry   string         `json:"top_country,omitempty"`

	// RecoveredTracked is false when every recovered value in the filtered
	// series is zero, which in practice means the source stopped reporting
	// the metric rather than nobody recovering.
	RecoveredTracked bool `json:"recovered_tracked"`
}
