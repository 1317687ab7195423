package fetcher

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/epimonitor/epimonitor-api/external/jhu"
	"github.com/epimonitor/epimonitor-api/schema"
)

const (
	logPrefix = "fetcher"

	// DefaultWorkers caps in-flight requests against the remote source.
	// A tunable, not a correctness requirement.
	DefaultWorkers = 16
)

// Result - fan-in of one fetch run. Records carry no ordering guarantee:
// batches land in worker completion order, and consumers needing
// chronology must sort by date themselves.
type Result struct {
	Records     []schema.DailyRecord
	MissingDays int
}

// Fetch expands the inclusive range [start, end] into one task per
// calendar day and runs the tasks on a bounded pool. Every task is
// failure-isolated: a timeout, non-200 response, decode failure or
// empty-after-filter day is logged, counted as missing and dropped without
// aborting the rest of the batch. There are no retries.
func Fetch(ctx context.Context, source jhu.ReportSource, start, end time.Time, workers int) Result {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	var (
		mu     sync.Mutex
		result Result
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, day := range Days(start, end) {
		day := day
		g.Go(func() error {
			records, err := source.FetchDay(ctx, day)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.WithFields(log.Fields{
					"prefix": logPrefix,
					"day":    day.Format("2006-01-02"),
					"error":  err,
				}).Warn("daily report dropped")
				result.MissingDays++
				return nil
			}
			result.Records = append(result.Records, records...)
			return nil
		})
	}

	// tasks absorb their own failures, the group never returns an error
	_ = g.Wait()

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"records": len(result.Records),
		"missing": result.MissingDays,
	}).Info("fetch range done")

	return result
}

// Days expands an inclusive date range into its calendar days at UTC
// midnight. An inverted range is empty.
func Days(start, end time.Time) []time.Time {
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	var days []time.Time
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}
