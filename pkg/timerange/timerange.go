package timerange

import (
	"fmt"
	"time"
)

// DefaultWindow is the trailing window used when no start time is given.
const DefaultWindow = 5 * time.Minute

// Range is a resolved time range, both bounds rendered as RFC3339 UTC at
// seconds precision. Ordering of the bounds is not validated; the Logs
// Engine API is the authority on range validity.
type Range struct {
	Start string
	End   string
}

// Resolve turns optional RFC3339 start/end inputs into a normalized Range.
// An absent start defaults to now minus DefaultWindow, an absent end to now.
// Explicit inputs are parsed and re-rendered, which coerces them to UTC and
// strips sub-second precision.
func Resolve(start, end string) (Range, error) {
	now := time.Now().UTC()

	startTime := now.Add(-DefaultWindow)
	if start != "" {
		t, err := time.Parse(time.RFC3339, start)
		if err != nil {
			return Range{}, fmt.Errorf("invalid start time %q: %w", start, err)
		}
		startTime = t
	}

	endTime := now
	if end != "" {
		t, err := time.Parse(time.RFC3339, end)
		if err != nil {
			return Range{}, fmt.Errorf("invalid end time %q: %w", end, err)
		}
		endTime = t
	}

	return Range{
		Start: Format(startTime),
		End:   Format(endTime),
	}, nil
}

// Format renders a time as RFC3339 UTC at seconds precision.
func Format(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(time.RFC3339)
}
