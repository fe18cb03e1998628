// Package period resolves symbolic reporting periods into concrete date
// ranges and maps timestamps into fixed-size chart buckets.
package period

import (
	"strings"
	"time"
)

// Kind names a symbolic reporting window.
type Kind string

const (
	Day     Kind = "day"
	Week    Kind = "week"
	Month   Kind = "month"
	Quarter Kind = "quarter"
	Year    Kind = "year"
)

// ParseKind normalizes a period keyword. Unknown values fall back to Month.
func ParseKind(value string) Kind {
	switch Kind(strings.ToLower(strings.TrimSpace(value))) {
	case Day:
		return Day
	case Week:
		return Week
	case Quarter:
		return Quarter
	case Year:
		return Year
	case Month:
		return Month
	default:
		return Month
	}
}

// Range is an inclusive date range. Start is midnight, End the last
// millisecond of its day.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the range.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Resolve maps a symbolic period onto the concrete range containing now.
func Resolve(kind Kind, now time.Time) Range {
	switch kind {
	case Day:
		start := startOfDay(now)
		return Range{Start: start, End: endOfDay(start)}
	case Week:
		start := startOfISOWeek(now)
		return Range{Start: start, End: endOfDay(start.AddDate(0, 0, 6))}
	case Quarter:
		qm := time.Month((int(now.Month())-1)/3*3 + 1)
		start := time.Date(now.Year(), qm, 1, 0, 0, 0, 0, now.Location())
		return Range{Start: start, End: endOfDay(start.AddDate(0, 3, -1))}
	case Year:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return Range{Start: start, End: endOfDay(time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location()))}
	default: // Month
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return Range{Start: start, End: endOfDay(start.AddDate(0, 1, -1))}
	}
}

// ResolvePrevious returns the window of equal meaning immediately preceding
// the current one. Calendar periods shift by a whole calendar unit, so a
// previous month keeps its natural length rather than a fixed 30 days.
func ResolvePrevious(kind Kind, now time.Time) Range {
	current := Resolve(kind, now)
	switch kind {
	case Day:
		start := current.Start.AddDate(0, 0, -1)
		return Range{Start: start, End: endOfDay(start)}
	case Week:
		start := current.Start.AddDate(0, 0, -7)
		return Range{Start: start, End: endOfDay(start.AddDate(0, 0, 6))}
	case Quarter:
		start := current.Start.AddDate(0, -3, 0)
		return Range{Start: start, End: endOfDay(current.Start.AddDate(0, 0, -1))}
	case Year:
		start := current.Start.AddDate(-1, 0, 0)
		return Range{Start: start, End: endOfDay(current.Start.AddDate(0, 0, -1))}
	default:
		start := current.Start.AddDate(0, -1, 0)
		return Range{Start: start, End: endOfDay(current.Start.AddDate(0, 0, -1))}
	}
}

// BucketCount returns the chart series length for a period kind.
func BucketCount(kind Kind) int {
	switch kind {
	case Day:
		return 8
	case Week:
		return 7
	case Quarter:
		return 3
	case Year:
		return 12
	default:
		return 4
	}
}

// BucketIndex maps a timestamp to its chart bucket. The result is always in
// [0, BucketCount(kind)) for timestamps inside the resolved range; callers
// must pre-filter by the range, no bounds check happens here.
func BucketIndex(kind Kind, t time.Time) int {
	switch kind {
	case Day:
		// 3-hour slots.
		return t.Hour() / 3
	case Week:
		// ISO weekday, Monday=0 .. Sunday=6.
		return (int(t.Weekday()) + 6) % 7
	case Quarter:
		return (int(t.Month()) - 1) % 3
	case Year:
		return int(t.Month()) - 1
	default:
		// 7-day bands of the month, days 29-31 stay in the last band.
		idx := (t.Day() - 1) / 7
		if idx > 3 {
			idx = 3
		}
		return idx
	}
}

// Labels returns the fixed display labels for a period's buckets.
func Labels(kind Kind) []string {
	switch kind {
	case Day:
		return []string{"00:00", "03:00", "06:00", "09:00", "12:00", "15:00", "18:00", "21:00"}
	case Week:
		return []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	case Quarter:
		return []string{"Month 1", "Month 2", "Month 3"}
	case Year:
		return []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	default:
		return []string{"Week 1", "Week 2", "Week 3", "Week 4"}
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	next := startOfDay(t).AddDate(0, 0, 1)
	return next.Add(-time.Millisecond)
}

func startOfISOWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return startOfDay(t.AddDate(0, 0, -offset))
}
