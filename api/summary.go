package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/epimonitor/epimonitor-api/consts"
	"github.com/epimonitor/epimonitor-api/schema"
	"github.com/epimonitor/epimonitor-api/summary"
)

const (
	dateLayout = "2006-01-02"

	// defaultRangeDays bounds the window served when the caller omits the
	// range.
	defaultRangeDays = 30
)

// parseFilter builds a summary filter from the request query: country
// (default all), repeatable continent, start/end dates and mode.
func parseFilter(c *gin.Context) (summary.Filter, bool) {
	f := summary.Filter{
		Country:    c.DefaultQuery("country", consts.AllCountries),
		Continents: c.QueryArray("continent"),
		Mode:       schema.SummaryLatest,
	}

	switch c.DefaultQuery("mode", string(schema.SummaryLatest)) {
	case string(schema.SummaryLatest):
	case string(schema.SummaryAccumulated):
		f.Mode = schema.SummaryAccumulated
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return f, false
	}

	now := time.Now().UTC()
	f.End = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	f.Start = f.End.AddDate(0, 0, -defaultRangeDays)

	if v := c.Query("start"); v != "" {
		ts, err := time.Parse(dateLayout, v)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return f, false
		}
		f.Start = ts
	}
	if v := c.Query("end"); v != "" {
		ts, err := time.Parse(dateLayout, v)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return f, false
		}
		f.End = ts
	}

	return f, true
}

func (s *Server) loadSummary(c *gin.Context) (*schema.Summary, bool) {
	f, ok := parseFilter(c)
	if !ok {
		return nil, false
	}

	records, err := s.mongoStore.ListDaily(c.Request.Context(), f.Start, f.End)
	if shouldInterupt(err, c) {
		return nil, false
	}

	result, err := summary.Summarize(records, f)
	if err != nil {
		// an empty dataset is a stop condition, not a server fault
		abortWithEncoding(c, http.StatusNotFound, errorNoData)
		return nil, false
	}
	return result, true
}

func (s *Server) summary(c *gin.Context) {
	result, ok := s.loadSummary(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) series(c *gin.Context) {
	result, ok := s.loadSummary(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"series": result.Series,
	})
}

func (s *Server) countries(c *gin.Context) {
	result, ok := s.loadSummary(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"mode":      result.Mode,
		"countries": result.Countries,
	})
}
