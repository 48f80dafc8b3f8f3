package score

import (
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/MilesT98/Actify-2/schema"
)

const scoreLogPrefix = "score"

// Rankings holds the two leaderboard views derived from one submission set.
type Rankings struct {
	Weekly  []schema.UserScore `json:"weekly"`
	AllTime []schema.UserScore `json:"all_time"`
}

type userAccumulator struct {
	score      schema.UserScore
	ratedCount int
	days       map[string]struct{}
}

// ComputeScores aggregates submissions into per-user leaderboard entries,
// sorted by total points descending with ties broken by user id.
//
// A user's average rating is the mean of per-submission vote averages,
// counting rated submissions only; unrated submissions still count toward
// the submission count but contribute nothing to the average. Total points
// are the average rating times ten. The result is a pure function of the
// input: processing order does not change any final value, and the input
// slice is never mutated.
//
// Submissions without a user id or timestamp are skipped with a warning so
// that one bad record cannot take down the whole leaderboard.
func ComputeScores(submissions []schema.Submission) []schema.UserScore {
	return computeScoresAt(submissions, time.Time{})
}

// ComputeScoresAt behaves like ComputeScores and additionally fills each
// entry's current submission-day streak relative to now.
func ComputeScoresAt(submissions []schema.Submission, now time.Time) []schema.UserScore {
	return computeScoresAt(submissions, now)
}

// Rank derives both leaderboard views from one submission set. The weekly
// view covers the Monday-to-Sunday window containing now; both views run
// through the identical aggregation.
func Rank(submissions []schema.Submission, now time.Time) (Rankings, error) {
	weeklySubmissions, err := FilterCurrentWeek(submissions, now)
	if err != nil {
		return Rankings{}, err
	}

	return Rankings{
		Weekly:  computeScoresAt(weeklySubmissions, now),
		AllTime: computeScoresAt(submissions, now),
	}, nil
}

func computeScoresAt(submissions []schema.Submission, now time.Time) []schema.UserScore {
	accumulators := make(map[string]*userAccumulator)
	order := make([]string, 0)

	for _, sub := range submissions {
		if sub.UserID == "" || sub.Timestamp.IsZero() {
			log.WithFields(log.Fields{
				"prefix":        scoreLogPrefix,
				"submission_id": sub.ID,
			}).Warn("skip malformed submission")
			continue
		}

		acc, ok := accumulators[sub.UserID]
		if !ok {
			acc = &userAccumulator{
				score: schema.UserScore{
					UserID:   sub.UserID,
					UserName: sub.UserName,
				},
				days: make(map[string]struct{}),
			}
			accumulators[sub.UserID] = acc
			order = append(order, sub.UserID)
		}

		acc.score.SubmissionCount++
		acc.score.VoteCount += len(sub.Votes)
		acc.score.ReactionCount += len(sub.Reactions)

		if len(sub.Votes) > 0 {
			sum := 0
			for _, v := range sub.Votes {
				sum += v.Rating
			}
			submissionAverage := float64(sum) / float64(len(sub.Votes))

			// running mean over rated submissions only
			acc.ratedCount++
			n := float64(acc.ratedCount)
			acc.score.AverageRating = (acc.score.AverageRating*(n-1) + submissionAverage) / n
		}

		if !now.IsZero() {
			acc.days[dayKey(sub.Timestamp.In(now.Location()))] = struct{}{}
		}
	}

	scores := make([]schema.UserScore, 0, len(order))
	for _, userID := range order {
		acc := accumulators[userID]
		acc.score.TotalPoints = acc.score.AverageRating * 10
		if !now.IsZero() {
			acc.score.CurrentStreak = streakFromDays(acc.days, now)
		}
		scores = append(scores, acc.score)
	}

	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].TotalPoints != scores[j].TotalPoints {
			return scores[i].TotalPoints > scores[j].TotalPoints
		}
		return scores[i].UserID < scores[j].UserID
	})

	return scores
}
