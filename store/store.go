package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
)

var (
	ErrUserNotFound         = fmt.Errorf("user not found")
	ErrGroupNotFound        = fmt.Errorf("group not found")
	ErrAlreadyGroupMember   = fmt.Errorf("user is already a group member")
	ErrNotGroupMember       = fmt.Errorf("user is not a group member")
	ErrNotificationNotFound = fmt.Errorf("notification not found")
	ErrSubmissionNotFound   = fmt.Errorf("submission not found")
)

// ActifyStore is the persistence surface of the service.
type ActifyStore interface {
	User
	Group
	Notification
	Submission
	Stats

	Ping(ctx context.Context) error
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

func NewMongoStore(client *mongo.Client, database string) ActifyStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}

func (m *mongoDB) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}
