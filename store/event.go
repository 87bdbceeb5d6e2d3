package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mindpulse/nowcast-api/schema"
)

// RawEvents persists and fetches the three raw event kinds the nowcast
// engine consumes. The engine itself never touches the store; callers
// fetch a user's full history and hand it over.
type RawEvents interface {
	CreateCheckin(event schema.CheckinEvent) (string, error)
	CreateChatEvent(event schema.ChatEvent) (string, error)
	CreateAssessment(event schema.AssessmentEvent) (string, error)
	ListRawEvents(owner string) ([]schema.RawEvent, error)
}

func (m *mongoDB) CreateCheckin(event schema.CheckinEvent) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if event.UserID == "" {
		return "", fmt.Errorf("user_id should not be empty")
	}
	if event.ID == "" {
		event.ID = uuid.New().String()
	}

	if _, err := m.client.Database(m.database).Collection(schema.CheckinCollection).InsertOne(ctx, &event); err != nil {
		return "", err
	}
	return event.ID, nil
}

func (m *mongoDB) CreateChatEvent(event schema.ChatEvent) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if event.UserID == "" {
		return "", fmt.Errorf("user_id should not be empty")
	}
	if event.ID == "" {
		event.ID = uuid.New().String()
	}

	if _, err := m.client.Database(m.database).Collection(schema.ChatEventCollection).InsertOne(ctx, &event); err != nil {
		return "", err
	}
	return event.ID, nil
}

func (m *mongoDB) CreateAssessment(event schema.AssessmentEvent) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if event.UserID == "" {
		return "", fmt.Errorf("user_id should not be empty")
	}
	if event.ID == "" {
		event.ID = uuid.New().String()
	}

	if _, err := m.client.Database(m.database).Collection(schema.AssessmentCollection).InsertOne(ctx, &event); err != nil {
		return "", err
	}
	return event.ID, nil
}

// ListRawEvents returns every stored event of a user across the three
// event collections. No date filtering happens here; the nowcast engine
// always consumes full history.
func (m *mongoDB) ListRawEvents(owner string) ([]schema.RawEvent, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	db := m.client.Database(m.database)
	query := bson.M{"user_id": owner}
	opts := options.Find().SetSort(bson.M{"ts": 1})

	events := make([]schema.RawEvent, 0)

	cursor, err := db.Collection(schema.CheckinCollection).Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	for cursor.Next(ctx) {
		var event schema.CheckinEvent
		if err := cursor.Decode(&event); err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	cursor, err = db.Collection(schema.ChatEventCollection).Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	for cursor.Next(ctx) {
		var event schema.ChatEvent
		if err := cursor.Decode(&event); err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	cursor, err = db.Collection(schema.AssessmentCollection).Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	for cursor.Next(ctx) {
		var event schema.AssessmentEvent
		if err := cursor.Decode(&event); err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}
