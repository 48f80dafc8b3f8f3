package schema

import "time"

const (
	SubmissionCollection = "submissions"
)

type SubmissionKind string

const (
	SubmissionKindGlobal SubmissionKind = "global"
	SubmissionKindGroup  SubmissionKind = "group"
)

// SubmissionPhotos holds the two camera perspectives. A submission is
// complete only when both references are present.
type SubmissionPhotos struct {
	Front string `json:"front" bson:"front"`
	Back  string `json:"back" bson:"back"`
}

func (p SubmissionPhotos) Complete() bool {
	return p.Front != "" && p.Back != ""
}

// Vote is a 1-5 rating a peer gives to a submission. A user keeps at most
// one vote per submission; re-voting replaces the previous entry.
type Vote struct {
	UserID string `json:"user_id" bson:"user_id"`
	Rating int    `json:"rating" bson:"rating"`
}

// Reaction is an unscored emoji tag, with the same one-per-user rule.
type Reaction struct {
	UserID string `json:"user_id" bson:"user_id"`
	Emoji  string `json:"emoji" bson:"emoji"`
}

type Submission struct {
	ID        string           `json:"id" bson:"id"`
	UserID    string           `json:"user_id" bson:"user_id"`
	UserName  string           `json:"user_name" bson:"user_name"`
	Kind      SubmissionKind   `json:"type" bson:"type"`
	GroupID   string           `json:"group_id,omitempty" bson:"group_id,omitempty"`
	Activity  string           `json:"activity" bson:"activity"`
	Photos    SubmissionPhotos `json:"photos" bson:"photos"`
	Votes     []Vote           `json:"votes" bson:"votes"`
	Reactions []Reaction       `json:"reactions" bson:"reactions"`
	Timestamp time.Time        `json:"timestamp" bson:"timestamp"`
}
