package reconcile

import "github.com/epimonitor/epimonitor-api/schema"

// RepairActive applies the mass-balance identity to one record. A zero
// reported Active alongside a positive Confirmed means the source did not
// derive the metric, so it is recomputed as
// max(0, Confirmed - Deaths - Recovered). A positive reported Active is
// trusted as-is even when it violates the identity; reported data wins
// over derived data. Recovered and Active are clamped non-negative
// afterwards since sources occasionally ship negative corrections.
func RepairActive(r schema.DailyRecord) schema.DailyRecord {
	if r.Active == 0 && r.Confirmed > 0 {
		r.Active = r.Confirmed - r.Deaths - r.Recovered
	}
	if r.Active < 0 {
		r.Active = 0
	}
	if r.Recovered < 0 {
		r.Recovered = 0
	}
	return r
}

// RepairAll maps RepairActive over a batch.
func RepairAll(records []schema.DailyRecord) []schema.DailyRecord {
	out := make([]schema.DailyRecord, len(records))
	for i, r := range records {
		out[i] = RepairActive(r)
	}
	return out
}
