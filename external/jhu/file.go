package jhu

import (
	"context"
	"io/ioutil"
	"time"

	"github.com/epimonitor/epimonitor-api/schema"
)

// fileSource - alternate ingestion path reading a locally persisted
// snapshot instead of the remote source. The file carries the same drifting
// column vocabulary and goes through the identical normalize/sanitize
// stages.
type fileSource struct {
	path string
}

// NewFile - report source backed by a single local snapshot file.
func NewFile(path string) ReportSource {
	return &fileSource{path: path}
}

func (f *fileSource) FetchDay(_ context.Context, day time.Time) ([]schema.DailyRecord, error) {
	data, err := ioutil.ReadFile(f.path)
	if err != nil {
		return nil, err
	}
	return ParseReport(data, day)
}
