package store

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mindpulse/nowcast-api/schema"
)

// Dashboard persists computed weekly nowcast records and serves the admin
// risk triage view.
type Dashboard interface {
	SaveWeeklyRecords(owner string, records []schema.WeeklyRecord) error
	GetWeeklyRecords(owner string) ([]schema.WeeklyRecord, error)
	ListLatestAlerts() ([]schema.WeeklyRecord, error)
}

// SaveWeeklyRecords upserts each record keyed by owner and week start, so
// recomputing a user's dashboard overwrites stale weeks in place.
func (m *mongoDB) SaveWeeklyRecords(owner string, records []schema.WeeklyRecord) error {
	c := m.client.Database(m.database).Collection(schema.WeeklyDashboardCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	for _, record := range records {
		record.Owner = owner

		query := bson.M{"owner": owner, "week_start_date": record.WeekStart}
		update := bson.M{"$set": &record}
		opts := options.Update().SetUpsert(true)
		if _, err := c.UpdateOne(ctx, query, update, opts); err != nil {
			log.WithFields(log.Fields{
				"prefix": mongoLogPrefix,
				"owner":  owner,
				"week":   record.WeekStart,
				"error":  err,
			}).Error("save weekly record")
			return err
		}
	}

	return nil
}

func (m *mongoDB) GetWeeklyRecords(owner string) ([]schema.WeeklyRecord, error) {
	c := m.client.Database(m.database).Collection(schema.WeeklyDashboardCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"week_start_date": 1})
	cursor, err := c.Find(ctx, bson.M{"owner": owner}, opts)
	if err != nil {
		return nil, err
	}

	records := make([]schema.WeeklyRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ListLatestAlerts returns, for each owner, the most recent persisted week
// whose alert flag is set. Backs the admin triage list.
func (m *mongoDB) ListLatestAlerts() ([]schema.WeeklyRecord, error) {
	c := m.client.Database(m.database).Collection(schema.WeeklyDashboardCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	pipeline := []bson.D{
		AggregationSort(bson.M{"week_start_date": -1}),
		AggregationGroup("$owner", bson.D{
			bson.E{Key: "latest", Value: bson.M{"$first": "$$ROOT"}},
		}),
		AggregationReplaceRoot("$latest"),
		AggregationMatch(bson.M{"alert_flag": true}),
		AggregationSort(bson.M{"owner": 1}),
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("aggregate latest alerts")
		return nil, err
	}

	records := make([]schema.WeeklyRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
