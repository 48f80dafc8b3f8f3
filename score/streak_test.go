package score

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MilesT98/Actify-2/schema"
)

func submissionOn(day time.Time) schema.Submission {
	return ratedSubmission("s-"+day.Format("2006-01-02"), "u1", day, 5)
}

func TestCurrentStreakConsecutiveDays(t *testing.T) {
	now := time.Date(2025, 6, 4, 21, 0, 0, 0, time.UTC)
	submissions := []schema.Submission{
		submissionOn(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)),
		submissionOn(time.Date(2025, 6, 3, 22, 0, 0, 0, time.UTC)),
		submissionOn(time.Date(2025, 6, 4, 7, 0, 0, 0, time.UTC)),
	}

	assert.Equal(t, 3, CurrentStreak(submissions, now))
}

func TestCurrentStreakSurvivesUntilEndOfDay(t *testing.T) {
	// no submission today yet; the streak that ended yesterday still counts
	now := time.Date(2025, 6, 4, 8, 0, 0, 0, time.UTC)
	submissions := []schema.Submission{
		submissionOn(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)),
		submissionOn(time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)),
	}

	assert.Equal(t, 2, CurrentStreak(submissions, now))
}

func TestCurrentStreakBrokenByGap(t *testing.T) {
	now := time.Date(2025, 6, 4, 8, 0, 0, 0, time.UTC)
	submissions := []schema.Submission{
		submissionOn(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)),
		submissionOn(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)),
		submissionOn(time.Date(2025, 6, 4, 7, 0, 0, 0, time.UTC)),
	}

	assert.Equal(t, 1, CurrentStreak(submissions, now))
}

func TestCurrentStreakZeroWhenStale(t *testing.T) {
	now := time.Date(2025, 6, 4, 8, 0, 0, 0, time.UTC)
	submissions := []schema.Submission{
		submissionOn(time.Date(2025, 5, 30, 9, 0, 0, 0, time.UTC)),
	}

	assert.Equal(t, 0, CurrentStreak(submissions, now))
}

func TestCurrentStreakEmpty(t *testing.T) {
	now := time.Date(2025, 6, 4, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, CurrentStreak(nil, now))
	assert.Equal(t, 0, CurrentStreak(nil, time.Time{}))
}
