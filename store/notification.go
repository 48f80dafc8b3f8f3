package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MilesT98/Actify-2/schema"
)

// notificationListLimit matches the page size the clients request.
const notificationListLimit = 100

type Notification interface {
	CreateNotification(userID, message string, notificationType schema.NotificationType, data map[string]interface{}) (*schema.Notification, error)
	ListNotifications(userID string, unreadOnly bool) ([]schema.Notification, error)
	MarkNotificationRead(id string) error
}

func (m *mongoDB) CreateNotification(userID, message string, notificationType schema.NotificationType, data map[string]interface{}) (*schema.Notification, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if data == nil {
		data = map[string]interface{}{}
	}

	notification := schema.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Message:   message,
		Type:      notificationType,
		Data:      data,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}

	c := m.client.Database(m.database).Collection(schema.NotificationCollection)
	if _, err := c.InsertOne(ctx, &notification); err != nil {
		return nil, err
	}

	return &notification, nil
}

func (m *mongoDB) ListNotifications(userID string, unreadOnly bool) ([]schema.Notification, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	filter := bson.M{"user_id": userID}
	if unreadOnly {
		filter["read"] = false
	}

	c := m.client.Database(m.database).Collection(schema.NotificationCollection)
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(notificationListLimit)

	cursor, err := c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	notifications := []schema.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}

	return notifications, nil
}

func (m *mongoDB) MarkNotificationRead(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.NotificationCollection)

	result, err := c.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$set": bson.M{"read": true},
	})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrNotificationNotFound
	}

	return nil
}
