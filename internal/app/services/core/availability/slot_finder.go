package availability

import (
	"deskwise-service/internal/app/models"
	"deskwise-service/internal/app/services/core/schedules"
	"deskwise-service/internal/pkg/constvars"
	"deskwise-service/internal/pkg/exceptions"
	"fmt"
	"time"
)

// FreeGaps computes the complement of the booked entries within the working
// window: the ordered list of maximal free sub-intervals. Cancelled entries do
// not consume time. Bookings reaching outside the window are clipped to it.
func FreeGaps(window schedules.Interval, booked []models.ScheduleEntry) []schedules.Interval {
	var gaps []schedules.Interval
	cursor := window.Start

	for i := range booked {
		if booked[i].IsCancelled() {
			continue
		}
		entry := schedules.Interval{Start: booked[i].Start, End: booked[i].End}
		if !schedules.Overlaps(entry, window) {
			continue
		}
		if entry.Start.Before(window.Start) {
			entry.Start = window.Start
		}
		if entry.End.After(window.End) {
			entry.End = window.End
		}

		if cursor.Before(entry.Start) {
			gaps = append(gaps, schedules.Interval{Start: cursor, End: entry.Start})
		}
		if entry.End.After(cursor) {
			cursor = entry.End
		}
	}

	if cursor.Before(window.End) {
		gaps = append(gaps, schedules.Interval{Start: cursor, End: window.End})
	}
	return gaps
}

// FindOptimalSlot picks the booking slot for the requested duration inside the
// working window. Gaps shorter than the duration are discarded, the remainder
// is bucketed against the window midpoint by time preference, and the
// earliest-starting candidate wins. When the preference bucket is empty the
// search falls back to every fitting gap, so a morning request never returns
// nil while an afternoon slot exists. A nil slot without an error means no gap
// of the requested length exists anywhere in the window.
//
// Booked entries must be ordered ascending by start, as the store returns them.
func FindOptimalSlot(window schedules.Interval, booked []models.ScheduleEntry, durationMinutes int, timePreference string) (*schedules.Interval, error) {
	if durationMinutes <= 0 {
		return nil, exceptions.ErrInvalidInterval(fmt.Errorf("slot duration must be positive, got %d minutes", durationMinutes))
	}
	duration := time.Duration(durationMinutes) * time.Minute

	var fitting []schedules.Interval
	for _, gap := range FreeGaps(window, booked) {
		if gap.Duration() >= duration {
			fitting = append(fitting, gap)
		}
	}
	if len(fitting) == 0 {
		return nil, nil
	}

	midpoint := window.Start.Add(window.Duration() / 2)
	var preferred []schedules.Interval
	switch timePreference {
	case constvars.TimePreferenceMorning:
		for _, gap := range fitting {
			if gap.Start.Before(midpoint) {
				preferred = append(preferred, gap)
			}
		}
	case constvars.TimePreferenceAfternoon:
		for _, gap := range fitting {
			if !gap.Start.Before(midpoint) {
				preferred = append(preferred, gap)
			}
		}
	default:
		preferred = fitting
	}
	if len(preferred) == 0 {
		preferred = fitting
	}

	// Gaps inherit the store ordering, so the first candidate is the earliest.
	slot := schedules.Interval{
		Start: preferred[0].Start,
		End:   preferred[0].Start.Add(duration),
	}
	return &slot, nil
}
