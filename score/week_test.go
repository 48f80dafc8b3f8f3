package score

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MilesT98/Actify-2/schema"
)

// 2025-06-02 is a Monday.
var wednesdayNoon = time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)

func TestWeekStart(t *testing.T) {
	start := WeekStart(wednesdayNoon)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), start)

	// a Monday is its own week start
	assert.Equal(t, start, WeekStart(start))

	// Sunday still belongs to the week that started the previous Monday
	sunday := time.Date(2025, 6, 8, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, start, WeekStart(sunday))
}

func TestWeekEnd(t *testing.T) {
	end := WeekEnd(wednesdayNoon)
	assert.Equal(t, time.Date(2025, 6, 8, 23, 59, 59, 999000000, time.UTC), end)
}

func TestWeekStartRespectsLocation(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*60*60)
	// 2025-06-01 23:30 UTC is already Monday 01:30 in UTC+2
	lateSunday := time.Date(2025, 6, 1, 23, 30, 0, 0, time.UTC).In(zone)

	start := WeekStart(lateSunday)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, zone).Unix(), start.Unix())
}

func TestFilterCurrentWeekBoundaries(t *testing.T) {
	mondayMidnight := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	sundayLastMilli := time.Date(2025, 6, 8, 23, 59, 59, 999000000, time.UTC)
	nextMondayMidnight := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	submissions := []schema.Submission{
		ratedSubmission("s1", "u1", mondayMidnight, 5),
		ratedSubmission("s2", "u1", sundayLastMilli, 5),
		ratedSubmission("s3", "u1", nextMondayMidnight, 5),
	}

	filtered, err := FilterCurrentWeek(submissions, wednesdayNoon)
	assert.NoError(t, err)
	assert.Len(t, filtered, 2)
	assert.Equal(t, "s1", filtered[0].ID)
	assert.Equal(t, "s2", filtered[1].ID)
}

func TestFilterCurrentWeekPreservesOrder(t *testing.T) {
	submissions := []schema.Submission{
		ratedSubmission("s3", "u1", time.Date(2025, 6, 5, 8, 0, 0, 0, time.UTC), 5),
		ratedSubmission("s1", "u1", time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC), 5),
		ratedSubmission("s2", "u1", time.Date(2025, 6, 4, 8, 0, 0, 0, time.UTC), 5),
	}

	filtered, err := FilterCurrentWeek(submissions, wednesdayNoon)
	assert.NoError(t, err)
	assert.Len(t, filtered, 3)
	assert.Equal(t, "s3", filtered[0].ID)
	assert.Equal(t, "s1", filtered[1].ID)
	assert.Equal(t, "s2", filtered[2].ID)
}

func TestFilterCurrentWeekEmptyInput(t *testing.T) {
	filtered, err := FilterCurrentWeek(nil, wednesdayNoon)
	assert.NoError(t, err)
	assert.NotNil(t, filtered)
	assert.Empty(t, filtered)
}

func TestFilterCurrentWeekInvalidNow(t *testing.T) {
	_, err := FilterCurrentWeek(nil, time.Time{})
	assert.Equal(t, ErrInvalidTime, err)
}
