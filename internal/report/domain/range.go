package domain

import (
	"time"

	"github.com/rentora/rentora/internal/report/period"
)

// ResolveRange applies the filter's explicit-bounds override, validating it
// first. Explicit bounds are widened to whole days so a plain end date still
// covers everything through 23:59:59.999, keeping every report over the same
// filter on the same window.
func ResolveRange(f Filter, now time.Time) (period.Range, error) {
	if f.StartDate != nil || f.EndDate != nil {
		if f.StartDate == nil || f.EndDate == nil {
			return period.Range{}, NewValidationError("range", "incomplete_range", "both start and end dates are required")
		}
		if f.EndDate.Before(*f.StartDate) {
			return period.Range{}, NewValidationError("range", "invalid_range", "end date before start date")
		}
		start := *f.StartDate
		end := *f.EndDate
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
		end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location()).AddDate(0, 0, 1).Add(-time.Millisecond)
		return period.Range{Start: start, End: end}, nil
	}
	return period.Resolve(f.Kind(), now), nil
}
