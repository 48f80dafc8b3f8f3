package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MilesT98/Actify-2/schema"
)

type NotificationTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewNotificationTestSuite(connURI, dbName string) *NotificationTestSuite {
	return &NotificationTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *NotificationTestSuite) SetupSuite() {
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

func (s *NotificationTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *NotificationTestSuite) TestCreateAndListNotifications() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	first, err := store.CreateNotification("user-n1", "welcome", schema.NotificationTypeGroupJoin, nil)
	s.NoError(err)
	s.NotEmpty(first.ID)
	s.False(first.Read)
	s.NotNil(first.Data)

	second, err := store.CreateNotification("user-n1", "someone joined", schema.NotificationTypeMemberJoin, map[string]interface{}{
		"group_id": "group-1",
	})
	s.NoError(err)

	listed, err := store.ListNotifications("user-n1", false)
	s.NoError(err)
	s.Len(listed, 2)
	// newest first
	s.Equal(second.ID, listed[0].ID)
	s.Equal(first.ID, listed[1].ID)

	other, err := store.ListNotifications("user-n2", false)
	s.NoError(err)
	s.Empty(other)
}

func (s *NotificationTestSuite) TestMarkNotificationRead() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	created, err := store.CreateNotification("user-n3", "read me", schema.NotificationTypeAchievement, nil)
	s.NoError(err)

	unread, err := store.ListNotifications("user-n3", true)
	s.NoError(err)
	s.Len(unread, 1)

	s.NoError(store.MarkNotificationRead(created.ID))

	unread, err = store.ListNotifications("user-n3", true)
	s.NoError(err)
	s.Empty(unread)

	all, err := store.ListNotifications("user-n3", false)
	s.NoError(err)
	s.Len(all, 1)
	s.True(all[0].Read)
}

func (s *NotificationTestSuite) TestMarkNotificationReadNotFound() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	s.Equal(ErrNotificationNotFound, store.MarkNotificationRead("no-such-notification"))
}

func TestNotificationTestSuite(t *testing.T) {
	suite.Run(t, NewNotificationTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-actify-notification"))
}
