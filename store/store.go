package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	defaultTimeout = 5 * time.Second
	mongoLogPrefix = "mongo"
)

// MongoStore combines all mongodb operations the nowcast service uses.
type MongoStore interface {
	RawEvents
	Dashboard

	Ping() error
	Close()
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// NewMongoStore create a new mongodb store
func NewMongoStore(client *mongo.Client, database string) MongoStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}

func (m *mongoDB) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return m.client.Ping(ctx, nil)
}

func (m *mongoDB) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	m.client.Disconnect(ctx)
}
