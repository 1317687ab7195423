package norm

import (
	"strconv"
	"strings"
	"time"

	"github.com/epimonitor/epimonitor-api/consts"
	"github.com/epimonitor/epimonitor-api/schema"
)

// updateLayouts - timestamp formats observed across the source's history.
var updateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"1/2/2006 15:04",
	"1/2/06 15:04",
	"1/2/2006 15:04:05",
}

// ParseCount coerces a textual count to a non-negative integer. Thousands
// separators and surrounding whitespace are stripped; unparseable values
// and negative corrections both degrade to zero.
func ParseCount(s string) int64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// some years report counts as floats ("123.0")
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0
		}
		n = int64(f)
	}
	if n < 0 {
		return 0
	}
	return n
}

// ParseCoord - best effort coordinate parse, zero on failure.
func ParseCoord(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// ParseDate resolves a row's report date from its update timestamp,
// normalized to UTC midnight. When the timestamp is absent or in an
// unknown format the provenance day of the source file is used instead.
func ParseDate(s string, fallback time.Time) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range updateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return midnight(ts)
		}
	}
	return midnight(fallback)
}

func midnight(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
}

// SanitizeRow converts one normalized row into a DailyRecord. The second
// return value reports admission: a row survives only with a non-empty
// country and some signal in it (confirmed or deaths). Dropping
// no-signal, no-location rows is intentional - it bounds the dataset, at
// the cost of zero-activity country-days being absent rather than present
// as zero.
func SanitizeRow(t schema.RawTable, row []string, sourceDay time.Time) (schema.DailyRecord, bool) {
	country := strings.TrimSpace(t.Cell(row, consts.ColCountry))
	r := schema.DailyRecord{
		Country:    country,
		Province:   strings.TrimSpace(t.Cell(row, consts.ColProvince)),
		Confirmed:  ParseCount(t.Cell(row, consts.ColConfirmed)),
		Deaths:     ParseCount(t.Cell(row, consts.ColDeaths)),
		Recovered:  ParseCount(t.Cell(row, consts.ColRecovered)),
		Active:     ParseCount(t.Cell(row, consts.ColActive)),
		Lat:        ParseCoord(t.Cell(row, consts.ColLat)),
		Long:       ParseCoord(t.Cell(row, consts.ColLong)),
		SourceDate: midnight(sourceDay),
	}
	r.Date = ParseDate(t.Cell(row, consts.ColLastUpdate), sourceDay)
	r.ReportTime = r.Date.Unix()

	if r.Country == "" {
		return schema.DailyRecord{}, false
	}
	if r.Confirmed == 0 && r.Deaths == 0 {
		return schema.DailyRecord{}, false
	}
	return r, true
}

// SanitizeTable maps SanitizeRow over a normalized table.
func SanitizeTable(t schema.RawTable, sourceDay time.Time) []schema.DailyRecord {
	records := make([]schema.DailyRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		if r, ok := SanitizeRow(t, row, sourceDay); ok {
			records = append(records, r)
		}
	}
	return records
}
