package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/epimonitor/epimonitor-api/enrich"
	"github.com/epimonitor/epimonitor-api/external/geodata"
	"github.com/epimonitor/epimonitor-api/external/jhu"
	"github.com/epimonitor/epimonitor-api/fetcher"
	"github.com/epimonitor/epimonitor-api/schema"
)

const logPrefix = "reconcile"

// ErrNoData - zero days succeeded across the whole requested range. The
// one terminal pipeline condition; downstream consumers must stop instead
// of aggregating an empty dataset.
var ErrNoData = fmt.Errorf("no data available for the requested range")

// Loader - an explicit, caller-held handle to the reconciled dataset. Each
// Load rebuilds the dataset in full; there is no hidden process-wide
// cache, and refreshing is an explicit call against this handle.
type Loader struct {
	source     jhu.ReportSource
	classifier geodata.Classifier
	workers    int
}

// NewLoader - reconciliation pipeline over a report source and a continent
// classifier.
func NewLoader(source jhu.ReportSource, classifier geodata.Classifier, workers int) *Loader {
	return &Loader{
		source:     source,
		classifier: classifier,
		workers:    workers,
	}
}

// Load runs the full pipeline for the inclusive range [start, end]:
// concurrent fetch, active-case repair, continent enrichment. The repair
// and enrichment passes each execute exactly once, in that order, and the
// records are immutable afterwards.
func (l *Loader) Load(ctx context.Context, start, end time.Time) (*schema.UnifiedDataset, error) {
	result := fetcher.Fetch(ctx, l.source, start, end, l.workers)

	records := RepairAll(result.Records)
	enrich.Continents(ctx, l.classifier, records)

	dataset := &schema.UnifiedDataset{
		RunID:       uuid.New().String(),
		FetchedAt:   time.Now().UTC(),
		Records:     records,
		MissingDays: result.MissingDays,
	}
	if dataset.Empty() {
		return nil, ErrNoData
	}

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"run":     dataset.RunID,
		"records": len(dataset.Records),
		"missing": dataset.MissingDays,
	}).Info("dataset reconciled")

	return dataset, nil
}

// Refresh - explicit invalidation: rebuild the dataset for the same range.
func (l *Loader) Refresh(ctx context.Context, start, end time.Time) (*schema.UnifiedDataset, error) {
	return l.Load(ctx, start, end)
}
