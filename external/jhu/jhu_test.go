package jhu

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const sampleReport = `Province_State,Country_Region,Last_Update,Lat,Long_,Confirmed,Deaths,Recovered,Active
,Iceland,2021-03-01 04:22:13,64.9631,-19.0208,6049,29,6007,13
,Italy,2021-03-01 04:22:13,41.8719,12.5674,"2,925,265",97699,"2,398,352",429214
`

func TestFetchDayParsesReport(t *testing.T) {
	day := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/03-01-2021.csv", r.URL.Path)
		_, _ = w.Write([]byte(sampleReport))
	}))
	defer srv.Close()

	source := NewHTTP(srv.URL, srv.Client())
	records, err := source.FetchDay(context.Background(), day)

	assert.NoError(t, err)
	assert.Equal(t, 2, len(records))
	assert.Equal(t, "Italy", records[1].Country)
	assert.Equal(t, int64(2925265), records[1].Confirmed)
	assert.Equal(t, day, records[0].Date)
}

func TestFetchDayNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	source := NewHTTP(srv.URL, srv.Client())
	_, err := source.FetchDay(context.Background(), time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, ErrBadStatus, err)
}

func TestParseReportLatinOneFallback(t *testing.T) {
	day := time.Date(2020, 3, 25, 0, 0, 0, 0, time.UTC)

	// "Curaçao" with a Latin-1 encoded cedilla, invalid as UTF-8
	body := append([]byte("Province/State,Country/Region,Confirmed,Deaths\nCura"),
		0xE7)
	body = append(body, []byte("ao,Netherlands,3,0\n")...)

	records, err := ParseReport(body, day)

	assert.NoError(t, err)
	assert.Equal(t, 1, len(records))
	assert.Equal(t, "Curaçao", records[0].Province)
	assert.Equal(t, "Netherlands", records[0].Country)
	// no update timestamp column: provenance day takes over
	assert.Equal(t, day, records[0].Date)
}

func TestParseReportStripsByteOrderMark(t *testing.T) {
	day := time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC)

	// early-format files open with a UTF-8 BOM on the first header cell;
	// left in place it would break the Province/State rename
	body := append([]byte("\ufeff"),
		[]byte("Province/State,Country/Region,Last Update,Confirmed,Deaths,Recovered\nHubei,China,2020-02-01 12:00:00,11177,350,295\n")...)

	records, err := ParseReport(body, day)

	assert.NoError(t, err)
	assert.Equal(t, 1, len(records))
	assert.Equal(t, "Hubei", records[0].Province)
	assert.Equal(t, "China", records[0].Country)
	assert.Equal(t, int64(11177), records[0].Confirmed)
}

func TestParseReportEmptyAfterFilter(t *testing.T) {
	day := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)

	body := []byte("Country_Region,Confirmed,Deaths\nX,0,0\n")
	_, err := ParseReport(body, day)
	assert.Equal(t, ErrEmptyReport, err)

	_, err = ParseReport([]byte("Country_Region,Confirmed\n"), day)
	assert.Equal(t, ErrEmptyReport, err)
}

func TestParseReportBadCSV(t *testing.T) {
	_, err := ParseReport([]byte("a,\"b\nunterminated"), time.Now())
	assert.Error(t, err)
}
