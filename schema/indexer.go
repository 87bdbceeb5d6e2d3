package schema

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	connURI  string
	database string
}

func NewMongoDBIndexer(connURI, database string) *MongoDBIndexer {
	return &MongoDBIndexer{
		connURI:  connURI,
		database: database,
	}
}

// IndexAll ensures indexes for every collection the nowcast service reads
// or writes.
func (m *MongoDBIndexer) IndexAll() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.connURI))
	if err != nil {
		log.WithField("prefix", "schema").WithError(err).Panic("connect mongo for indexing")
	}
	defer client.Disconnect(ctx)

	db := client.Database(m.database)

	eventIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "ts", Value: 1}},
		},
	}
	for _, collection := range []string{CheckinCollection, ChatEventCollection, AssessmentCollection} {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, eventIndex); err != nil {
			log.WithField("prefix", "schema").WithError(err).Panicf("create indexes for %s", collection)
		}
	}

	if _, err := db.Collection(WeeklyDashboardCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "week_start_date", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		log.WithField("prefix", "schema").WithError(err).Panic("create indexes for weekly dashboard")
	}
}
