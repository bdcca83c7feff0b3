package schedules

import "time"

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect. An interval that
// ends exactly when another begins does not overlap it. A zero-length interval
// never overlaps anything.
func Overlaps(a, b Interval) bool {
	if !a.Start.Before(a.End) || !b.Start.Before(b.End) {
		return false
	}
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// Contains reports whether the instant falls inside the half-open interval.
func Contains(i Interval, instant time.Time) bool {
	return !instant.Before(i.Start) && instant.Before(i.End)
}

// Duration returns End - Start.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}
