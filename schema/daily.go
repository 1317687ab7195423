package schema

import "time"

// DailyRecord - one reconciled row of a daily snapshot report. Counts are
// kept non-negative through the whole pipeline. Active is derived from the
// mass-balance identity whenever the source omits or zeroes it while
// Confirmed is positive.
type DailyRecord struct {
	Country   string    `json:"country" bson:"country"`
	Province  string    `json:"province,omitempty" bson:"province,omitempty"`
	Date      time.Time `json:"date" bson:"date"`
	Confirmed int64     `json:"confirmed" bson:"confirmed"`
	Deaths    int64     `json:"deaths" bson:"deaths"`
	Recovered int64     `json:"recovered" bson:"recovered"`
	Active    int64     `json:"active" bson:"active"`
	Lat       float64   `json:"lat,omitempty" bson:"lat,omitempty"`
	Long      float64   `json:"long,omitempty" bson:"long,omitempty"`
	Continent string    `json:"continent,omitempty" bson:"continent,omitempty"`

	// SourceDate is the calendar day of the originating file. It doubles as
	// the fallback report date when the file carries no usable update
	// timestamp.
	SourceDate time.Time `json:"source_date" bson:"source_date"`
	ReportTime int64     `json:"report_ts" bson:"report_ts"`
}

// UnifiedDataset - the reconciled output of one pipeline run. Rebuilt in
// full on every run; there is no incremental update path.
type UnifiedDataset struct {
	RunID       string        `json:"run_id" bson:"run_id"`
	FetchedAt   time.Time     `json:"fetched_at" bson:"fetched_at"`
	Records     []DailyRecord `json:"records" bson:"records"`
	MissingDays int           `json:"missing_days" bson:"missing_days"`
}

// Empty reports whether the run produced no rows at all, the one terminal
// condition downstream consumers must treat as a stop signal.
func (d *UnifiedDataset) Empty() bool {
	return len(d.Records) == 0
}
