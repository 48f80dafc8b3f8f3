package schema

import "time"

const (
	GroupCollection = "groups"
)

// WeeklyChallenge is a challenge prompt queued for an upcoming week.
type WeeklyChallenge struct {
	Activity  string `json:"activity" bson:"activity"`
	Suggester string `json:"suggester,omitempty" bson:"suggester,omitempty"`
	VoteCount int    `json:"vote_count" bson:"vote_count"`
}

type Group struct {
	ID                 string            `json:"id" bson:"id"`
	Name               string            `json:"name" bson:"name"`
	Description        string            `json:"description" bson:"description"`
	Members            []string          `json:"members" bson:"members"`
	CurrentChallenge   string            `json:"current_challenge" bson:"current_challenge"`
	NextWeekChallenges []WeeklyChallenge `json:"next_week_challenges" bson:"next_week_challenges"`
	SubmissionDeadline time.Time         `json:"challenge_submission_deadline" bson:"challenge_submission_deadline"`
	CreatedBy          string            `json:"created_by" bson:"created_by"`
	MemberCount        int               `json:"member_count" bson:"member_count"`
	IsPublic           bool              `json:"is_public" bson:"is_public"`
	CreatedAt          time.Time         `json:"created_at" bson:"created_at"`
}

// HasMember reports whether the given user belongs to the group.
func (g Group) HasMember(userID string) bool {
	for _, m := range g.Members {
		if m == userID {
			return true
		}
	}
	return false
}
