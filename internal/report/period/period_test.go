package period

import (
	"testing"
	"time"
)

var kinds = []Kind{Day, Week, Month, Quarter, Year}

func TestParseKindFallsBackToMonth(t *testing.T) {
	cases := map[string]Kind{
		"day":     Day,
		" WEEK ":  Week,
		"month":   Month,
		"quarter": Quarter,
		"year":    Year,
		"":        Month,
		"decade":  Month,
	}
	for input, want := range cases {
		if got := ParseKind(input); got != want {
			t.Fatalf("ParseKind(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestResolveContainment(t *testing.T) {
	now := time.Date(2025, time.November, 19, 14, 30, 0, 0, time.Local)
	for _, kind := range kinds {
		current := Resolve(kind, now)
		if current.Start.After(current.End) {
			t.Fatalf("%s: start %v after end %v", kind, current.Start, current.End)
		}
		if !current.Contains(now) {
			t.Fatalf("%s: resolved range does not contain now", kind)
		}
		previous := ResolvePrevious(kind, now)
		if !previous.End.Before(current.Start) {
			t.Fatalf("%s: previous end %v not before current start %v", kind, previous.End, current.Start)
		}
		if gap := current.Start.Sub(previous.End); gap != time.Millisecond {
			t.Fatalf("%s: ranges not contiguous, gap %v", kind, gap)
		}
	}
}

func TestResolveMonthBounds(t *testing.T) {
	now := time.Date(2025, time.March, 15, 9, 0, 0, 0, time.Local)
	current := Resolve(Month, now)
	if current.Start.Day() != 1 || current.Start.Month() != time.March {
		t.Fatalf("unexpected month start %v", current.Start)
	}
	if current.End.Day() != 31 || current.End.Hour() != 23 {
		t.Fatalf("unexpected month end %v", current.End)
	}

	// The previous calendar month keeps its own length: February 2025 has 28 days.
	previous := ResolvePrevious(Month, now)
	if previous.Start.Month() != time.February || previous.Start.Day() != 1 {
		t.Fatalf("unexpected previous start %v", previous.Start)
	}
	if previous.End.Day() != 28 {
		t.Fatalf("expected previous month to end on the 28th, got %v", previous.End)
	}
}

func TestResolveWeekStartsMonday(t *testing.T) {
	// 2025-11-16 is a Sunday; its ISO week began Monday the 10th.
	sunday := time.Date(2025, time.November, 16, 12, 0, 0, 0, time.Local)
	r := Resolve(Week, sunday)
	if r.Start.Weekday() != time.Monday || r.Start.Day() != 10 {
		t.Fatalf("unexpected week start %v", r.Start)
	}
	if r.End.Weekday() != time.Sunday || r.End.Day() != 16 {
		t.Fatalf("unexpected week end %v", r.End)
	}
}

func TestResolveQuarterBounds(t *testing.T) {
	now := time.Date(2025, time.August, 2, 0, 0, 0, 0, time.Local)
	r := Resolve(Quarter, now)
	if r.Start.Month() != time.July || r.Start.Day() != 1 {
		t.Fatalf("unexpected quarter start %v", r.Start)
	}
	if r.End.Month() != time.September || r.End.Day() != 30 {
		t.Fatalf("unexpected quarter end %v", r.End)
	}
	previous := ResolvePrevious(Quarter, now)
	if previous.Start.Month() != time.April || previous.End.Month() != time.June {
		t.Fatalf("unexpected previous quarter %v - %v", previous.Start, previous.End)
	}
}

func TestBucketIndexWithinRange(t *testing.T) {
	now := time.Date(2024, time.February, 29, 10, 0, 0, 0, time.Local) // leap year
	for _, kind := range kinds {
		r := Resolve(kind, now)
		count := BucketCount(kind)
		for ts := r.Start; !ts.After(r.End); ts = ts.Add(90 * time.Minute) {
			idx := BucketIndex(kind, ts)
			if idx < 0 || idx >= count {
				t.Fatalf("%s: index %d out of [0,%d) for %v", kind, idx, count, ts)
			}
		}
	}
}

func TestBucketIndexSundayMapsLast(t *testing.T) {
	sunday := time.Date(2025, time.November, 16, 8, 0, 0, 0, time.Local)
	if got := BucketIndex(Week, sunday); got != 6 {
		t.Fatalf("Sunday should land in bucket 6, got %d", got)
	}
	monday := time.Date(2025, time.November, 10, 8, 0, 0, 0, time.Local)
	if got := BucketIndex(Week, monday); got != 0 {
		t.Fatalf("Monday should land in bucket 0, got %d", got)
	}
}

func TestBucketIndexMonthCaps(t *testing.T) {
	for day, want := range map[int]int{1: 0, 7: 0, 8: 1, 15: 2, 22: 3, 29: 3, 31: 3} {
		ts := time.Date(2025, time.January, day, 12, 0, 0, 0, time.Local)
		if got := BucketIndex(Month, ts); got != want {
			t.Fatalf("day %d: got bucket %d, want %d", day, got, want)
		}
	}
}

func TestLabelsMatchBucketCounts(t *testing.T) {
	for _, kind := range kinds {
		if got, want := len(Labels(kind)), BucketCount(kind); got != want {
			t.Fatalf("%s: %d labels for %d buckets", kind, got, want)
		}
	}
}
