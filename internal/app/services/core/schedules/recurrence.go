package schedules

import (
	"deskwise-service/internal/app/models"
	"deskwise-service/internal/pkg/constvars"
	"deskwise-service/internal/pkg/exceptions"
	"fmt"
	"time"
)

// maxSeriesOccurrences bounds a single expansion so a distant end date cannot
// produce an unbounded series.
const maxSeriesOccurrences = 366

// ExpandRecurrence generates the concrete occurrence sequence for a recurring
// template. The first element is the template itself with its own id and no
// recurrenceParentId; every following element is a generated instance pointing
// back at the template. Each instance keeps the template duration applied to
// its shifted start. Output is chronological by start.
//
// newInstanceID supplies ids for generated instances so callers control id
// assignment.
func ExpandRecurrence(template models.ScheduleEntry, pattern models.RecurrencePattern, newInstanceID func() string) ([]models.ScheduleEntry, error) {
	if !template.Start.Before(template.End) {
		return nil, exceptions.ErrInvalidInterval(fmt.Errorf("template start %s is not before end %s", template.Start, template.End))
	}
	if err := validatePattern(pattern); err != nil {
		return nil, err
	}

	duration := template.End.Sub(template.Start)

	series := []models.ScheduleEntry{template}
	for occurrence := 1; ; occurrence++ {
		if pattern.MaxOccurrences > 0 && occurrence >= pattern.MaxOccurrences {
			break
		}

		start := nextOccurrenceStart(template.Start, pattern.Type, pattern.Interval, occurrence)
		if pattern.EndDate != nil && start.After(*pattern.EndDate) {
			break
		}
		if occurrence >= maxSeriesOccurrences {
			return nil, exceptions.ErrInvalidRecurrencePattern(fmt.Errorf("series exceeds %d occurrences", maxSeriesOccurrences))
		}

		instance := template
		instance.ID = newInstanceID()
		instance.RecurrenceParentID = template.ID
		instance.Start = start
		instance.End = start.Add(duration)
		series = append(series, instance)
	}

	return series, nil
}

func validatePattern(pattern models.RecurrencePattern) error {
	switch pattern.Type {
	case constvars.RecurrenceTypeDaily, constvars.RecurrenceTypeWeekly, constvars.RecurrenceTypeMonthly:
	default:
		return exceptions.ErrInvalidRecurrencePattern(fmt.Errorf("unrecognized recurrence type '%s'", pattern.Type))
	}
	if pattern.Interval < 1 {
		return exceptions.ErrInvalidRecurrencePattern(fmt.Errorf("interval must be positive, got %d", pattern.Interval))
	}

	hasEndDate := pattern.EndDate != nil
	hasMaxOccurrences := pattern.MaxOccurrences > 0
	if hasEndDate == hasMaxOccurrences {
		return exceptions.ErrInvalidRecurrencePattern(fmt.Errorf("exactly one of endDate and maxOccurrences must be set"))
	}
	return nil
}

// nextOccurrenceStart computes the start of occurrence n (n >= 1, the template
// itself is occurrence 0). Monthly steps keep the template's day-of-month,
// clamping to the last day of months that are too short rather than rolling
// into the next month.
func nextOccurrenceStart(anchor time.Time, recurrenceType string, interval, n int) time.Time {
	switch recurrenceType {
	case constvars.RecurrenceTypeDaily:
		return anchor.AddDate(0, 0, interval*n)
	case constvars.RecurrenceTypeWeekly:
		return anchor.AddDate(0, 0, 7*interval*n)
	case constvars.RecurrenceTypeMonthly:
		year, month, day := anchor.Date()
		totalMonths := int(month) - 1 + interval*n
		targetYear := year + totalMonths/12
		targetMonth := time.Month(totalMonths%12 + 1)
		if last := lastDayOfMonth(targetYear, targetMonth); day > last {
			day = last
		}
		hour, minute, second := anchor.Clock()
		return time.Date(targetYear, targetMonth, day, hour, minute, second, anchor.Nanosecond(), anchor.Location())
	default:
		return anchor
	}
}

func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}
