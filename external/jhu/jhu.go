package jhu

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/charmap"

	"github.com/epimonitor/epimonitor-api/norm"
	"github.com/epimonitor/epimonitor-api/schema"
)

const (
	logPrefix = "jhu"

	// DefaultURL - daily report directory, one CSV per calendar day named
	// MM-DD-YYYY.csv.
	DefaultURL = "https://raw.githubusercontent.com/CSSEGISandData/COVID-19/master/csse_covid_19_data/csse_covid_19_daily_reports"

	dayLayout      = "01-02-2006"
	defaultTimeout = 15 * time.Second
)

var (
	ErrBadStatus   = fmt.Errorf("report source returned non-2xx status")
	ErrEmptyReport = fmt.Errorf("report empty after admission filtering")
)

// ReportSource - one daily snapshot report per calendar day, already
// normalized and sanitized.
type ReportSource interface {
	FetchDay(ctx context.Context, day time.Time) ([]schema.DailyRecord, error)
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTP - report source against the remote daily report directory. A nil
// httpClient gets a default with a bounded per-request timeout; a
// timed-out day is treated like any other failed day.
func NewHTTP(baseURL string, httpClient *http.Client) ReportSource {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (c *client) FetchDay(ctx context.Context, day time.Time) ([]schema.DailyRecord, error) {
	url := fmt.Sprintf("%s/%s.csv", c.baseURL, day.Format(dayLayout))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": url, "error": err}).Warn("get daily report")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": url, "status": resp.StatusCode}).Warn("get daily report")
		return nil, ErrBadStatus
	}

	data, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Warn("read daily report response")
		return nil, err
	}

	return ParseReport(data, day)
}

// ParseReport decodes one daily report into sanitized records. Bodies are
// expected in UTF-8; older files are Latin-1 and get transcoded when the
// bytes are not valid UTF-8. Early-format files also open with a UTF-8
// BOM, which would otherwise glue itself to the first header cell and
// break alias matching. The report runs through schema normalization and
// row sanitation, so a day that filters down to nothing is reported as
// ErrEmptyReport and contributes no rows.
func ParseReport(data []byte, sourceDay time.Time) ([]schema.DailyRecord, error) {
	if !utf8.Valid(data) {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return nil, err
		}
		data = decoded
	}
	data = bytes.TrimPrefix(data, []byte("\ufeff"))

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrEmptyReport
	}

	table := norm.Normalize(schema.RawTable{Columns: rows[0], Rows: rows[1:]})
	records := norm.SanitizeTable(table, sourceDay)
	if len(records) == 0 {
		return nil, ErrEmptyReport
	}
	return records, nil
}
