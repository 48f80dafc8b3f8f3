package schema

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDBIndexer builds the indexes every collection relies on. It is run
// once at startup and by the test suites against a clean database.
type MongoDBIndexer struct {
	client   *mongo.Client
	database string
}

func NewMongoDBIndexer(connURI, databaseName string) *MongoDBIndexer {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Client().ApplyURI(connURI)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.WithError(err).Panic("create mongo client for indexing")
	}

	return &MongoDBIndexer{
		client:   client,
		database: databaseName,
	}
}

func (m *MongoDBIndexer) IndexAll() error {
	if err := m.IndexUserCollection(); err != nil {
		return err
	}
	if err := m.IndexGroupCollection(); err != nil {
		return err
	}
	if err := m.IndexSubmissionCollection(); err != nil {
		return err
	}
	return m.IndexNotificationCollection()
}

func (m *MongoDBIndexer) IndexUserCollection() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c := m.client.Database(m.database).Collection(UserCollection)
	_, err := c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"id": 1},
		Options: options.Index().SetName("user_id_unique").SetUnique(true),
	})
	return err
}

func (m *MongoDBIndexer) IndexGroupCollection() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c := m.client.Database(m.database).Collection(GroupCollection)
	_, err := c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.M{"id": 1},
			Options: options.Index().SetName("group_id_unique").SetUnique(true),
		},
		{
			Keys:    bson.M{"members": 1},
			Options: options.Index().SetName("group_members"),
		},
	})
	return err
}

func (m *MongoDBIndexer) IndexSubmissionCollection() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c := m.client.Database(m.database).Collection(SubmissionCollection)
	_, err := c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.M{"id": 1},
			Options: options.Index().SetName("submission_id_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("submission_timestamp"),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("submission_user_timestamp"),
		},
		{
			Keys:    bson.D{{Key: "group_id", Value: 1}, {Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("submission_group_timestamp"),
		},
	})
	return err
}

func (m *MongoDBIndexer) IndexNotificationCollection() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c := m.client.Database(m.database).Collection(NotificationCollection)
	_, err := c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.M{"id": 1},
			Options: options.Index().SetName("notification_id_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("notification_user_created_at"),
		},
	})
	return err
}
