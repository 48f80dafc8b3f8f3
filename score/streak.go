package score

import (
	"time"

	"github.com/MilesT98/Actify-2/schema"
)

// CurrentStreak counts the consecutive calendar days with at least one
// submission, ending today or yesterday relative to now. Days are resolved
// in now's location. A streak that was alive yesterday still counts until
// the current day is over.
func CurrentStreak(submissions []schema.Submission, now time.Time) int {
	if now.IsZero() {
		return 0
	}

	days := make(map[string]struct{})
	for _, sub := range submissions {
		if sub.Timestamp.IsZero() {
			continue
		}
		days[dayKey(sub.Timestamp.In(now.Location()))] = struct{}{}
	}

	return streakFromDays(days, now)
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func streakFromDays(days map[string]struct{}, now time.Time) int {
	if len(days) == 0 {
		return 0
	}

	cursor := now
	if _, ok := days[dayKey(cursor)]; !ok {
		cursor = cursor.AddDate(0, 0, -1)
		if _, ok := days[dayKey(cursor)]; !ok {
			return 0
		}
	}

	streak := 0
	for {
		if _, ok := days[dayKey(cursor)]; !ok {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return streak
}
