package enrich

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/epimonitor/epimonitor-api/consts"
	"github.com/epimonitor/epimonitor-api/external/geodata"
	"github.com/epimonitor/epimonitor-api/schema"
)

const logPrefix = "enrich"

// Continents assigns a continent label to every record. Country names are
// first run through the standardization table to bridge known aliasing
// gaps between source files and the classifier vocabulary, then the
// distinct set is classified in one batch call and the mapping broadcast
// back over all rows. The lookup count stays proportional to country
// cardinality, not row count.
//
// The classifier is best effort: an unresolved name, or a label outside
// the fixed continent vocabulary, falls into the "Other" bucket, and a
// classifier outage degrades the whole pass to "Other" instead of
// blocking reconciliation.
func Continents(ctx context.Context, classifier geodata.Classifier, records []schema.DailyRecord) {
	for i := range records {
		records[i].Country = consts.StandardCountry(records[i].Country)
	}

	mapping := resolve(ctx, classifier, distinctCountries(records))

	for i := range records {
		continent := mapping[records[i].Country]
		if !consts.KnownContinent(continent) {
			continent = consts.OtherContinent
		}
		records[i].Continent = continent
	}
}

func resolve(ctx context.Context, classifier geodata.Classifier, names []string) map[string]string {
	if classifier == nil || len(names) == 0 {
		return nil
	}

	mapping, err := classifier.Continents(ctx, names)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":    logPrefix,
			"countries": len(names),
			"error":     err,
		}).Warn("continent classifier unavailable, falling back to Other")
		return nil
	}
	return mapping
}

func distinctCountries(records []schema.DailyRecord) []string {
	seen := make(map[string]struct{}, len(records))
	var names []string
	for _, r := range records {
		if _, ok := seen[r.Country]; ok {
			continue
		}
		seen[r.Country] = struct{}{}
		names = append(names, r.Country)
	}
	return names
}
