package streak_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/streak"
)

var dayKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// noon UTC keeps every helper-built event on the same day in UTC.
var now = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return now.AddDate(0, 0, -n)
}

func TestCompute_Empty(t *testing.T) {
	got := streak.Compute(nil, "UTC", now)

	assert.Equal(t, 0, got.StreakLength)
	assert.Nil(t, got.MostRecentLocalDate)
}

func TestCompute_OnlyZeroTimestamps(t *testing.T) {
	got := streak.Compute([]time.Time{{}, {}}, "UTC", now)

	assert.Equal(t, streak.Result{}, got)
}

func TestCompute_SingleEventNow(t *testing.T) {
	zones := []string{"UTC", "Europe/Rome", "America/Los_Angeles", "Asia/Tokyo", "Pacific/Kiritimati", "Pacific/Pago_Pago"}

	for _, tz := range zones {
		t.Run(tz, func(t *testing.T) {
			got := streak.Compute([]time.Time{now}, tz, now)
			assert.Equal(t, 1, got.StreakLength)
		})
	}
}

func TestCompute_GapStopsTheWalk(t *testing.T) {
	events := []time.Time{daysAgo(0), daysAgo(1), daysAgo(2), daysAgo(5)}

	got := streak.Compute(events, "UTC", now)

	assert.Equal(t, 3, got.StreakLength)
	require.NotNil(t, got.MostRecentLocalDate)
	assert.Equal(t, "2026-10-16", *got.MostRecentLocalDate)
}

func TestCompute_SeededFromYesterday(t *testing.T) {
	events := []time.Time{daysAgo(1), daysAgo(2)}

	got := streak.Compute(events, "UTC", now)

	assert.Equal(t, 2, got.StreakLength)
	assert.Equal(t, "2026-10-15", *got.MostRecentLocalDate)
}

func TestCompute_BrokenStreak(t *testing.T) {
	got := streak.Compute([]time.Time{daysAgo(2), daysAgo(3)}, "UTC", now)

	assert.Equal(t, 0, got.StreakLength)
	require.NotNil(t, got.MostRecentLocalDate)
	assert.Equal(t, "2026-10-14", *got.MostRecentLocalDate)
}

func TestCompute_FutureEventsNeverCount(t *testing.T) {
	t.Run("Only future", func(t *testing.T) {
		got := streak.Compute([]time.Time{now.AddDate(0, 0, 1)}, "UTC", now)
		assert.Equal(t, 0, got.StreakLength)
	})

	t.Run("Future plus today", func(t *testing.T) {
		got := streak.Compute([]time.Time{now.AddDate(0, 0, 1), now.AddDate(0, 0, 2), daysAgo(0)}, "UTC", now)
		assert.Equal(t, 1, got.StreakLength)
	})
}

func TestCompute_DuplicatesAndOrder(t *testing.T) {
	gofakeit.Seed(7)

	base := []time.Time{
		daysAgo(0), daysAgo(0).Add(-3 * time.Hour),
		daysAgo(1), daysAgo(1).Add(2 * time.Hour), daysAgo(1).Add(-5 * time.Hour),
		daysAgo(2),
		daysAgo(9),
	}
	want := streak.Compute(base, "Europe/Rome", now)

	for i := 0; i < 50; i++ {
		shuffled := append([]time.Time(nil), base...)
		gofakeit.ShuffleAnySlice(shuffled)

		assert.Equal(t, want, streak.Compute(shuffled, "Europe/Rome", now))
	}
	assert.Equal(t, 3, want.StreakLength)
}

func TestCompute_RandomHistories(t *testing.T) {
	gofakeit.Seed(99)

	for i := 0; i < 200; i++ {
		var events []time.Time
		for j := gofakeit.Number(0, 40); j > 0; j-- {
			events = append(events, gofakeit.DateRange(now.AddDate(0, 0, -30), now.AddDate(0, 0, 3)))
		}

		got := streak.Compute(events, "America/New_York", now)

		assert.GreaterOrEqual(t, got.StreakLength, 0)
		assert.LessOrEqual(t, got.StreakLength, 31)
		if len(events) == 0 {
			assert.Nil(t, got.MostRecentLocalDate)
			continue
		}
		require.NotNil(t, got.MostRecentLocalDate)
		assert.Regexp(t, dayKeyPattern, *got.MostRecentLocalDate)

		greatest := ""
		loc := streak.ResolveLocation("America/New_York")
		for _, e := range events {
			if k, _ := streak.DayKey(e, loc); k > greatest {
				greatest = k
			}
		}
		assert.Equal(t, greatest, *got.MostRecentLocalDate)
	}
}

func TestCompute_UnknownTimezoneIsUTC(t *testing.T) {
	events := []time.Time{
		time.Date(2026, 10, 15, 23, 30, 0, 0, time.UTC),
		time.Date(2026, 10, 14, 1, 0, 0, 0, time.UTC),
	}

	want := streak.Compute(events, "UTC", now)
	for _, tz := range []string{"", "Mars/Olympus_Mons", "Local", "not a zone", "../etc/passwd"} {
		assert.Equal(t, want, streak.Compute(events, tz, now), "tz %q", tz)
	}
}

func TestCompute_LocalizesDays(t *testing.T) {
	// 23:30 UTC on the 15th is already the 16th in Tokyo.
	event := time.Date(2026, 10, 15, 23, 30, 0, 0, time.UTC)

	utc := streak.Compute([]time.Time{event}, "UTC", now)
	tokyo := streak.Compute([]time.Time{event}, "Asia/Tokyo", now)

	assert.Equal(t, 1, utc.StreakLength)
	assert.Equal(t, "2026-10-15", *utc.MostRecentLocalDate)
	assert.Equal(t, 1, tokyo.StreakLength)
	assert.Equal(t, "2026-10-16", *tokyo.MostRecentLocalDate)

	// 05:00 UTC on the 16th is still the evening of the 15th in Los Angeles,
	// so an event at 03:00 UTC is "today" there.
	laNow := time.Date(2026, 10, 16, 5, 0, 0, 0, time.UTC)
	la := streak.Compute([]time.Time{time.Date(2026, 10, 16, 3, 0, 0, 0, time.UTC)}, "America/Los_Angeles", laNow)
	assert.Equal(t, 1, la.StreakLength)
	assert.Equal(t, "2026-10-15", *la.MostRecentLocalDate)
}

func TestCompute_AcrossDSTChange(t *testing.T) {
	rome, err := time.LoadLocation("Europe/Rome")
	require.NoError(t, err)

	// Clocks go back on 2026-10-25 in Rome.
	var events []time.Time
	for d := 22; d <= 28; d++ {
		events = append(events, time.Date(2026, 10, d, 8, 0, 0, 0, rome))
	}
	romeNow := time.Date(2026, 10, 28, 18, 0, 0, 0, rome)

	got := streak.Compute(events, "Europe/Rome", romeNow)

	assert.Equal(t, 7, got.StreakLength)
}

func TestCompute_WalkIsCapped(t *testing.T) {
	events := make([]time.Time, 0, 500)
	for i := 0; i < 500; i++ {
		events = append(events, daysAgo(i))
	}

	got := streak.Compute(events, "UTC", now)

	assert.Equal(t, streak.MaxWalk+1, got.StreakLength)
}

func TestCompute_OutOfRangeTimestampsIgnored(t *testing.T) {
	events := []time.Time{
		time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(-5, 1, 1, 0, 0, 0, 0, time.UTC),
		daysAgo(0),
	}

	got := streak.Compute(events, "UTC", now)

	assert.Equal(t, 1, got.StreakLength)
	assert.Equal(t, "2026-10-16", *got.MostRecentLocalDate)
}

func TestTracker_UsesClock(t *testing.T) {
	tracker := streak.NewTrackerWithClock(func() time.Time { return now })

	got := tracker.Current([]time.Time{daysAgo(0), daysAgo(1)}, "UTC")
	assert.Equal(t, 2, got.StreakLength)

	again := tracker.Current([]time.Time{daysAgo(1), daysAgo(0)}, "UTC")
	assert.Equal(t, got, again)
}

func TestDaysAgoKey(t *testing.T) {
	loc := streak.ResolveLocation("Europe/Rome")
	n := time.Date(2026, 3, 1, 0, 30, 0, 0, loc)

	assert.Equal(t, "2026-03-01", streak.DaysAgoKey(n, loc, 0))
	assert.Equal(t, "2026-02-28", streak.DaysAgoKey(n, loc, 1))
	assert.Equal(t, "2025-12-31", streak.DaysAgoKey(n, loc, 60))
}
