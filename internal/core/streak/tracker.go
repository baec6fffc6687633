// Package streak computes consecutive-day activity streaks over a user's
// event timestamps, localized to an IANA timezone.
package streak

import "time"

// MaxWalk bounds the backward walk over past days.
const MaxWalk = 365

// Result is both the computed streak and the response payload.
type Result struct {
	StreakLength int `json:"streak"`

	// MostRecentLocalDate is the greatest day-key among the events, nil when
	// there were none.
	MostRecentLocalDate *string `json:"lastEventDate"`
}

// Compute returns the current streak of events in timezone tz as of now.
//
// A streak ends today or yesterday (local). Days after today never count,
// and several events on one local day count once. Unknown zones fall back
// to UTC; Compute never fails.
func Compute(events []time.Time, tz string, now time.Time) Result {
	loc := ResolveLocation(tz)

	days := make(map[string]struct{}, len(events))
	latest := ""
	for _, e := range events {
		key, ok := DayKey(e, loc)
		if !ok {
			continue
		}
		days[key] = struct{}{}
		if key > latest {
			latest = key
		}
	}

	if len(days) == 0 {
		return Result{}
	}

	res := Result{MostRecentLocalDate: &latest}

	offset := 0
	if _, ok := days[DaysAgoKey(now, loc, 0)]; !ok {
		if _, ok := days[DaysAgoKey(now, loc, 1)]; !ok {
			return res
		}
		offset = 1
	}

	res.StreakLength = 1
	for i := 0; i < MaxWalk; i++ {
		if _, ok := days[DaysAgoKey(now, loc, offset+1)]; !ok {
			break
		}
		res.StreakLength++
		offset++
	}

	return res
}

// Tracker computes streaks against a clock.
type Tracker struct {
	now func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{now: time.Now}
}

// NewTrackerWithClock is used by tests to pin "now".
func NewTrackerWithClock(now func() time.Time) *Tracker {
	return &Tracker{now: now}
}

func (t *Tracker) Current(events []time.Time, tz string) Result {
	return Compute(events, tz, t.now())
}
