package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MilesT98/Actify-2/schema"
)

// groupListLimit caps unbounded group listings.
const groupListLimit = 1000

type Group interface {
	CreateGroup(creatorID, name, description, challenge string, isPublic bool) (*schema.Group, error)
	GetGroup(id string) (*schema.Group, error)
	ListGroups(memberID string, publicOnly bool) ([]schema.Group, error)
	JoinGroup(groupID, userID string) error
	LeaveGroup(groupID, userID string) error
}

func (m *mongoDB) CreateGroup(creatorID, name, description, challenge string, isPublic bool) (*schema.Group, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	group := schema.Group{
		ID:                 uuid.New().String(),
		Name:               name,
		Description:        description,
		Members:            []string{creatorID},
		CurrentChallenge:   challenge,
		NextWeekChallenges: []schema.WeeklyChallenge{},
		SubmissionDeadline: now.AddDate(0, 0, 7),
		CreatedBy:          creatorID,
		MemberCount:        1,
		IsPublic:           isPublic,
		CreatedAt:          now,
	}

	c := m.client.Database(m.database).Collection(schema.GroupCollection)
	if _, err := c.InsertOne(ctx, &group); err != nil {
		return nil, err
	}

	return &group, nil
}

func (m *mongoDB) GetGroup(id string) (*schema.Group, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.GroupCollection)

	var group schema.Group
	if err := c.FindOne(ctx, bson.M{"id": id}).Decode(&group); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}

	return &group, nil
}

func (m *mongoDB) ListGroups(memberID string, publicOnly bool) ([]schema.Group, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if publicOnly {
		filter["is_public"] = true
	}
	if memberID != "" {
		filter["members"] = memberID
	}

	c := m.client.Database(m.database).Collection(schema.GroupCollection)
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(groupListLimit)

	cursor, err := c.Find(ctx, filter, opts)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("list groups")
		return nil, err
	}

	groups := []schema.Group{}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}

	return groups, nil
}

// JoinGroup adds a user to a group. The membership guard lives in the update
// filter so concurrent joins cannot add the same user twice.
func (m *mongoDB) JoinGroup(groupID, userID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.GroupCollection)

	query := bson.M{
		"id":      groupID,
		"members": bson.M{"$ne": userID},
	}
	update := bson.M{
		"$push": bson.M{"members": userID},
		"$inc":  bson.M{"member_count": 1},
	}

	result, err := c.UpdateOne(ctx, query, update)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":   mongoLogPrefix,
			"group_id": groupID,
			"user_id":  userID,
			"error":    err,
		}).Error("join group")
		return err
	}

	if result.MatchedCount == 0 {
		// no match is either a missing group or an existing membership
		if _, err := m.GetGroup(groupID); err != nil {
			return err
		}
		return ErrAlreadyGroupMember
	}

	return nil
}

func (m *mongoDB) LeaveGroup(groupID, userID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.GroupCollection)

	query := bson.M{
		"id":      groupID,
		"members": userID,
	}
	update := bson.M{
		"$pull": bson.M{"members": userID},
		"$inc":  bson.M{"member_count": -1},
	}

	result, err := c.UpdateOne(ctx, query, update)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":   mongoLogPrefix,
			"group_id": groupID,
			"user_id":  userID,
			"error":    err,
		}).Error("leave group")
		return err
	}

	if result.MatchedCount == 0 {
		if _, err := m.GetGroup(groupID); err != nil {
			return err
		}
		return ErrNotGroupMember
	}

	return nil
}
