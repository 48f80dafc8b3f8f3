package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/MilesT98/Actify-2/schema"
)

type Stats interface {
	GetStats() (*schema.Stats, error)
}

func (m *mongoDB) GetStats() (*schema.Stats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	db := m.client.Database(m.database)

	var stats schema.Stats
	var err error

	if stats.TotalUsers, err = db.Collection(schema.UserCollection).CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if stats.TotalGroups, err = db.Collection(schema.GroupCollection).CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if stats.TotalSubmissions, err = db.Collection(schema.SubmissionCollection).CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if stats.TotalNotifications, err = db.Collection(schema.NotificationCollection).CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if stats.ActiveGroups, err = db.Collection(schema.GroupCollection).CountDocuments(ctx, bson.M{
		"member_count": bson.M{"$gt": 1},
	}); err != nil {
		return nil, err
	}

	return &stats, nil
}
