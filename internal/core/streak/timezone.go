package streak

import (
	"time"

	// Embeds the IANA database so zone lookups do not depend on the host.
	_ "time/tzdata"
)

// DayKeyLayout formats a local calendar day. Keys are zero-padded, so their
// lexicographic order is their chronological order.
const DayKeyLayout = "2006-01-02"

// ResolveLocation loads the IANA zone named tz. An empty or unknown name
// resolves to UTC, and so does "Local", which would otherwise leak the
// server's zone into the result.
func ResolveLocation(tz string) *time.Location {
	if tz == "" || tz == "Local" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DayKey returns the local calendar day of t in loc. It reports false for
// the zero time and for instants whose local year cannot be written with
// four digits.
func DayKey(t time.Time, loc *time.Location) (string, bool) {
	if t.IsZero() {
		return "", false
	}
	local := t.In(loc)
	if y := local.Year(); y < 1 || y > 9999 {
		return "", false
	}
	return local.Format(DayKeyLayout), true
}

// DaysAgoKey returns the key of the calendar day n days before now's local
// day in loc. It steps civil dates rather than 24h intervals, so DST
// transitions never skip or repeat a day.
func DaysAgoKey(now time.Time, loc *time.Location, n int) string {
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d-n, 12, 0, 0, 0, time.UTC).Format(DayKeyLayout)
}
