package score

import (
	"errors"
	"time"

	"github.com/MilesT98/Actify-2/schema"
)

// ErrInvalidTime is returned when a zero reference time is supplied. A zero
// "now" is a programming error, not a runtime condition to recover from.
var ErrInvalidTime = errors.New("invalid reference time")

// WeekStart returns Monday 00:00:00.000 of the week containing t, in t's
// location.
func WeekStart(t time.Time) time.Time {
	year, month, day := t.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	offset := (int(midnight.Weekday()) + 6) % 7 // Monday = 0
	return midnight.AddDate(0, 0, -offset)
}

// WeekEnd returns Sunday 23:59:59.999 of the week containing t, in t's
// location.
func WeekEnd(t time.Time) time.Time {
	return WeekStart(t).AddDate(0, 0, 7).Add(-time.Millisecond)
}

// FilterCurrentWeek returns the subsequence of submissions, relative order
// preserved, whose timestamp falls within [WeekStart(now), WeekEnd(now)]
// inclusive.
func FilterCurrentWeek(submissions []schema.Submission, now time.Time) ([]schema.Submission, error) {
	if now.IsZero() {
		return nil, ErrInvalidTime
	}

	start := WeekStart(now)
	end := WeekEnd(now)

	filtered := make([]schema.Submission, 0, len(submissions))
	for _, sub := range submissions {
		if sub.Timestamp.Before(start) || sub.Timestamp.After(end) {
			continue
		}
		filtered = append(filtered, sub)
	}

	return filtered, nil
}
