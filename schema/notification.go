package schema

import "time"

const (
	NotificationCollection = "notifications"
)

type NotificationType string

const (
	NotificationTypeGroupJoin     NotificationType = "group_join"
	NotificationTypeMemberJoin    NotificationType = "member_join"
	NotificationTypeMemberLeave   NotificationType = "member_leave"
	NotificationTypeChallengeVote NotificationType = "challenge_vote"
	NotificationTypeAchievement   NotificationType = "achievement"
)

type Notification struct {
	ID        string                 `json:"id" bson:"id"`
	UserID    string                 `json:"user_id" bson:"user_id"`
	Message   string                 `json:"message" bson:"message"`
	Type      NotificationType       `json:"type" bson:"type"`
	Data      map[string]interface{} `json:"data" bson:"data"`
	Read      bool                   `json:"read" bson:"read"`
	CreatedAt time.Time              `json:"created_at" bson:"created_at"`
}
