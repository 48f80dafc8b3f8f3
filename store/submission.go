package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MilesT98/Actify-2/schema"
)

// defaultSubmissionLimit matches the page size the original clients request.
const defaultSubmissionLimit = 50

// SubmissionFilter narrows a submission listing. Zero values mean "no
// constraint"; a zero limit falls back to the default page size.
type SubmissionFilter struct {
	UserID  string
	GroupID string
	Limit   int64
}

type Submission interface {
	CreateSubmission(submission schema.Submission) (*schema.Submission, error)
	ListSubmissions(filter SubmissionFilter) ([]schema.Submission, error)
	VoteSubmission(id string, vote schema.Vote) error
	ReactSubmission(id string, reaction schema.Reaction) error
}

func (m *mongoDB) CreateSubmission(submission schema.Submission) (*schema.Submission, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	submission.ID = uuid.New().String()
	if submission.Timestamp.IsZero() {
		submission.Timestamp = time.Now().UTC()
	}
	if submission.Votes == nil {
		submission.Votes = []schema.Vote{}
	}
	if submission.Reactions == nil {
		submission.Reactions = []schema.Reaction{}
	}

	c := m.client.Database(m.database).Collection(schema.SubmissionCollection)
	if _, err := c.InsertOne(ctx, &submission); err != nil {
		return nil, err
	}

	return &submission, nil
}

// ListSubmissions returns submissions newest first. This is the slice the
// ranking engine consumes.
func (m *mongoDB) ListSubmissions(filter SubmissionFilter) ([]schema.Submission, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.UserID != "" {
		query["user_id"] = filter.UserID
	}
	if filter.GroupID != "" {
		query["group_id"] = filter.GroupID
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultSubmissionLimit
	}

	c := m.client.Database(m.database).Collection(schema.SubmissionCollection)
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := c.Find(ctx, query, opts)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("list submissions")
		return nil, err
	}

	submissions := []schema.Submission{}
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}

	return submissions, nil
}

// VoteSubmission records a vote, replacing any previous vote from the same
// user. Removal and insertion are two updates, matching the last-write-wins
// behavior of the original backend.
func (m *mongoDB) VoteSubmission(id string, vote schema.Vote) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SubmissionCollection)

	result, err := c.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$pull": bson.M{"votes": bson.M{"user_id": vote.UserID}},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrSubmissionNotFound
	}

	_, err = c.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$push": bson.M{"votes": vote},
	})
	return err
}

// ReactSubmission records an emoji reaction with the same one-per-user
// replacement rule as votes.
func (m *mongoDB) ReactSubmission(id string, reaction schema.Reaction) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SubmissionCollection)

	result, err := c.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$pull": bson.M{"reactions": bson.M{"user_id": reaction.UserID}},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrSubmissionNotFound
	}

	_, err = c.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$push": bson.M{"reactions": reaction},
	})
	return err
}
