package schema

// UserScore is a leaderboard entry derived from a set of submissions. It is
// recomputed on demand and never persisted.
//
// AverageRating is the mean of per-submission vote averages, taken over
// rated submissions only, so SubmissionCount may exceed the number of
// submissions that actually contributed to the average.
type UserScore struct {
	UserID          string  `json:"user_id"`
	UserName        string  `json:"user_name"`
	TotalPoints     float64 `json:"total_points"`
	SubmissionCount int     `json:"submission_count"`
	AverageRating   float64 `json:"average_rating"`
	VoteCount       int     `json:"vote_count"`
	ReactionCount   int     `json:"reaction_count"`
	CurrentStreak   int     `json:"current_streak"`
}
