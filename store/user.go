package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MilesT98/Actify-2/schema"
)

type User interface {
	CreateUser(name, email string) (*schema.User, error)
	GetUser(id string) (*schema.User, error)
}

func (m *mongoDB) CreateUser(name, email string) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	user := schema.User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	c := m.client.Database(m.database).Collection(schema.UserCollection)
	if _, err := c.InsertOne(ctx, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (m *mongoDB) GetUser(id string) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserCollection)

	var user schema.User
	if err := c.FindOne(ctx, bson.M{"id": id}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}
