package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/epimonitor/epimonitor-api/schema"
)

type fakeStore struct {
	records []schema.DailyRecord
	pingErr error
}

func (f *fakeStore) ReplaceDaily(records []schema.DailyRecord) error { return nil }

func (f *fakeStore) ListDaily(_ context.Context, start, end time.Time) ([]schema.DailyRecord, error) {
	var out []schema.DailyRecord
	for _, r := range f.records {
		if !r.Date.Before(start) && !r.Date.After(end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) DeleteDailyBefore(timeBefore int64) error { return nil }
func (f *fakeStore) Ping() error                              { return f.pingErr }
func (f *fakeStore) Close()                                   {}

func testServer(records []schema.DailyRecord) http.Handler {
	gin.SetMode(gin.TestMode)
	return NewServer(&fakeStore{records: records}).setupRouter()
}

func testRecords() []schema.DailyRecord {
	day := func(d int) time.Time {
		return time.Date(2021, 3, d, 0, 0, 0, 0, time.UTC)
	}
	return []schema.DailyRecord{
		{Country: "X", Continent: "Europe", Date: day(1), Confirmed: 10, Deaths: 1, Active: 9},
		{Country: "X", Continent: "Europe", Date: day(2), Confirmed: 20, Deaths: 2, Active: 18},
		{Country: "X", Continent: "Europe", Date: day(3), Confirmed: 30, Deaths: 3, Active: 27},
	}
}

func TestSummaryEndpoint(t *testing.T) {
	router := testServer(testRecords())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/summary?start=2021-03-01&end=2021-03-03&mode=accumulated", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var s schema.Summary
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	assert.Equal(t, schema.SummaryAccumulated, s.Mode)
	assert.Equal(t, int64(60), s.Totals.Confirmed)
	assert.Equal(t, "X", s.TopCountry)
}

func TestCountriesEndpointLatest(t *testing.T) {
	router := testServer(testRecords())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/countries?start=2021-03-01&end=2021-03-03&mode=latest", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Countries []schema.CountryTotal `json:"countries"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, len(resp.Countries))
	assert.Equal(t, int64(30), resp.Countries[0].Confirmed)
}

func TestSeriesEndpointEmptyRange(t *testing.T) {
	router := testServer(testRecords())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/series?start=2022-01-01&end=2022-01-31", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, errorNoData.Code, resp.Code)
}

func TestSummaryEndpointBadParams(t *testing.T) {
	router := testServer(testRecords())

	for _, target := range []string{
		"/v1/summary?mode=bogus",
		"/v1/summary?start=03-01-2021",
		"/v1/summary?end=yesterday",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, target, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestHealthz(t *testing.T) {
	router := testServer(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
