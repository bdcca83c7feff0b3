package utils

import (
	"deskwise-service/internal/pkg/exceptions"
	"time"
)

// ParseRFC3339UTC parses an RFC3339 timestamp and normalizes it to UTC. All
// interval math in the scheduling engine runs on UTC instants.
func ParseRFC3339UTC(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseTime(err)
	}
	return parsed.UTC(), nil
}

// ParseCalendarDate parses a YYYY-MM-DD date in the provided location.
func ParseCalendarDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	parsed, err := time.ParseInLocation("2006-01-02", value, loc)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseTime(err)
	}
	return parsed, nil
}
