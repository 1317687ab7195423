package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/epimonitor/epimonitor-api/schema"
)

var (
	ErrDailyFetch  = fmt.Errorf("fetch daily records fail")
	ErrDailyDecode = fmt.Errorf("decode daily record fail")
)

// DailyOperator - persistence of reconciled daily records
type DailyOperator interface {
	ReplaceDaily(records []schema.DailyRecord) error
	ListDaily(ctx context.Context, start, end time.Time) ([]schema.DailyRecord, error)
	DeleteDailyBefore(timeBefore int64) error
}

// ReplaceDaily upserts every record keyed by (country, province,
// report_ts), so re-running a reconciliation over an overlapping range
// replaces instead of duplicating.
func (m *mongoDB) ReplaceDaily(records []schema.DailyRecord) error {
	if len(records) == 0 {
		log.WithField("prefix", mongoLogPrefix).Debug("no record to update")
		return nil
	}

	collection := m.client.Database(m.database).Collection(DailyCollection)
	opts := options.Replace().SetUpsert(true)
	for _, r := range records {
		filter := bson.M{"country": r.Country, "province": r.Province, "report_ts": r.ReportTime}
		if _, err := collection.ReplaceOne(context.Background(), filter, r, opts); err != nil {
			log.WithField("prefix", mongoLogPrefix).Warnf("daily upsert with error: %s", err)
			return err
		}
	}

	log.WithFields(log.Fields{"prefix": mongoLogPrefix, "records": len(records)}).Debug("ReplaceDaily upsert data")
	return nil
}

// ListDaily returns records whose report date falls inside the inclusive
// range, sorted by report_ts ascending.
func (m *mongoDB) ListDaily(ctx context.Context, start, end time.Time) ([]schema.DailyRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"report_ts": bson.M{
		"$gte": start.Unix(),
		"$lte": end.Unix(),
	}}
	opts := options.Find().SetSort(bson.M{"report_ts": 1})

	cur, err := m.client.Database(m.database).Collection(DailyCollection).Find(ctx, filter, opts)
	if nil != err {
		log.WithField("prefix", mongoLogPrefix).Errorf("%v: %s", ErrDailyFetch, err)
		return nil, ErrDailyFetch
	}
	defer cur.Close(ctx)

	var records []schema.DailyRecord
	for cur.Next(ctx) {
		var r schema.DailyRecord
		if err := cur.Decode(&r); err != nil {
			log.WithField("prefix", mongoLogPrefix).Errorf("daily decode with error: %s", err)
			return nil, ErrDailyDecode
		}
		records = append(records, r)
	}
	return records, nil
}

// DeleteDailyBefore trims records older than the retention window.
func (m *mongoDB) DeleteDailyBefore(timeBefore int64) error {
	filter := bson.M{"report_ts": bson.M{"$lte": timeBefore}}
	res, err := m.client.Database(m.database).Collection(DailyCollection).DeleteMany(context.Background(), filter)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Warnf("daily delete unused record with error: %s", err)
		return err
	}
	log.WithFields(log.Fields{"prefix": mongoLogPrefix, "records": res.DeletedCount}).Debug("DeleteDailyBefore delete data")
	return nil
}
