package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mindpulse/nowcast-api/schema"
)

type RawEventTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewRawEventTestSuite(connURI, dbName string) *RawEventTestSuite {
	return &RawEventTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *RawEventTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}

	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

// CleanMongoDB drop the whole test mongodb
func (s *RawEventTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *RawEventTestSuite) TestCreateCheckin() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	sleep := 6.5
	id, err := store.CreateCheckin(schema.CheckinEvent{
		UserID:             "userA",
		Timestamp:          time.Date(2020, 5, 25, 9, 0, 0, 0, time.UTC).Unix(),
		MoodScore:          6,
		SleepHours:         &sleep,
		ChallengeCompleted: 1,
		ChallengeTotal:     2,
	})
	s.NoError(err)
	s.NotEmpty(id)

	var stored schema.CheckinEvent
	err = s.testDatabase.Collection(schema.CheckinCollection).FindOne(
		context.Background(), bson.M{"_id": id}).Decode(&stored)
	s.NoError(err)
	s.Equal("userA", stored.UserID)
	s.Equal(6, stored.MoodScore)
	s.Equal(6.5, *stored.SleepHours)
}

func (s *RawEventTestSuite) TestCreateCheckinWithoutOwner() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.CreateCheckin(schema.CheckinEvent{MoodScore: 5})
	s.Error(err)
}

func (s *RawEventTestSuite) TestListRawEvents() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	day1 := time.Date(2020, 5, 25, 9, 0, 0, 0, time.UTC).Unix()
	day2 := time.Date(2020, 5, 26, 9, 0, 0, 0, time.UTC).Unix()

	_, err := store.CreateCheckin(schema.CheckinEvent{UserID: "userB", Timestamp: day1, MoodScore: 4})
	s.NoError(err)
	_, err = store.CreateChatEvent(schema.ChatEvent{
		UserID: "userB", Timestamp: day1,
		Distress: 7, Rumination: 5, SleepDifficulty: 6,
		Distortion: schema.DistortionCounts{Catastrophizing: 2},
	})
	s.NoError(err)
	_, err = store.CreateAssessment(schema.AssessmentEvent{UserID: "userB", Timestamp: day2, TotalScore: 12})
	s.NoError(err)
	_, err = store.CreateCheckin(schema.CheckinEvent{UserID: "userC", Timestamp: day1, MoodScore: 9})
	s.NoError(err)

	events, err := store.ListRawEvents("userB")
	s.NoError(err)
	s.Len(events, 3)

	kinds := map[string]int{}
	for _, event := range events {
		s.Equal("userB", event.Owner())
		switch event.(type) {
		case schema.CheckinEvent:
			kinds["checkin"]++
		case schema.ChatEvent:
			kinds["chat"]++
		case schema.AssessmentEvent:
			kinds["assessment"]++
		}
	}
	s.Equal(map[string]int{"checkin": 1, "chat": 1, "assessment": 1}, kinds)
}

func (s *RawEventTestSuite) TestListRawEventsUnknownOwner() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	events, err := store.ListRawEvents("nobody")
	s.NoError(err)
	s.Len(events, 0)
}

func TestRawEventTestSuite(t *testing.T) {
	suite.Run(t, NewRawEventTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-raw-event"))
}
