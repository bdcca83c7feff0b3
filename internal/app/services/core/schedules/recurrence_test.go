package schedules

import (
	"deskwise-service/internal/app/models"
	"deskwise-service/internal/pkg/constvars"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func weeklyTemplate() models.ScheduleEntry {
	// Monday 09:00-10:00 UTC
	start := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	return models.ScheduleEntry{
		ID:           "parent",
		TechnicianID: "tech-1",
		Type:         constvars.ScheduleTypeAppointment,
		Status:       constvars.ScheduleStatusScheduled,
		Start:        start,
		End:          start.Add(time.Hour),
	}
}

func TestExpandRecurrence(t *testing.T) {
	t.Run("Weekly Five Occurrences", func(t *testing.T) {
		template := weeklyTemplate()
		pattern := models.RecurrencePattern{
			Type:           constvars.RecurrenceTypeWeekly,
			Interval:       1,
			MaxOccurrences: 5,
		}

		series, err := ExpandRecurrence(template, pattern, sequentialIDs("inst"))

		assert.NoError(t, err)
		assert.Len(t, series, 5)
		assert.Equal(t, "parent", series[0].ID)
		assert.Empty(t, series[0].RecurrenceParentID, "parent must not point at itself")
		for i := 1; i < len(series); i++ {
			assert.Equal(t, "parent", series[i].RecurrenceParentID)
			assert.Equal(t, 7*24*time.Hour, series[i].Start.Sub(series[i-1].Start), "occurrences must be exactly 7 days apart")
			assert.Equal(t, time.Hour, series[i].End.Sub(series[i].Start), "duration must be preserved")
		}
	})

	t.Run("Daily With Interval", func(t *testing.T) {
		template := weeklyTemplate()
		pattern := models.RecurrencePattern{
			Type:           constvars.RecurrenceTypeDaily,
			Interval:       2,
			MaxOccurrences: 3,
		}

		series, err := ExpandRecurrence(template, pattern, sequentialIDs("inst"))

		assert.NoError(t, err)
		assert.Len(t, series, 3)
		assert.Equal(t, 48*time.Hour, series[1].Start.Sub(series[0].Start))
		assert.Equal(t, 48*time.Hour, series[2].Start.Sub(series[1].Start))
	})

	t.Run("Month End Clamp", func(t *testing.T) {
		start := time.Date(2025, time.March, 31, 9, 0, 0, 0, time.UTC)
		template := weeklyTemplate()
		template.Start = start
		template.End = start.Add(time.Hour)
		pattern := models.RecurrencePattern{
			Type:           constvars.RecurrenceTypeMonthly,
			Interval:       1,
			MaxOccurrences: 3,
		}

		series, err := ExpandRecurrence(template, pattern, sequentialIDs("inst"))

		assert.NoError(t, err)
		assert.Len(t, series, 3)
		// April has 30 days: clamp to the 30th, not roll into May 1st.
		assert.Equal(t, time.Date(2025, time.April, 30, 9, 0, 0, 0, time.UTC), series[1].Start)
		// May has 31 days again: back on the 31st.
		assert.Equal(t, time.Date(2025, time.May, 31, 9, 0, 0, 0, time.UTC), series[2].Start)
	})

	t.Run("End Date Bounds Series", func(t *testing.T) {
		template := weeklyTemplate()
		endDate := template.Start.AddDate(0, 0, 15)
		pattern := models.RecurrencePattern{
			Type:     constvars.RecurrenceTypeWeekly,
			Interval: 1,
			EndDate:  &endDate,
		}

		series, err := ExpandRecurrence(template, pattern, sequentialIDs("inst"))

		assert.NoError(t, err)
		assert.Len(t, series, 3, "occurrences past the end date must be dropped")
		assert.False(t, series[len(series)-1].Start.After(endDate))
	})

	t.Run("Unrecognized Type Rejected", func(t *testing.T) {
		pattern := models.RecurrencePattern{Type: "hourly", Interval: 1, MaxOccurrences: 3}

		_, err := ExpandRecurrence(weeklyTemplate(), pattern, sequentialIDs("inst"))

		assert.Error(t, err)
	})

	t.Run("Non Positive Interval Rejected", func(t *testing.T) {
		pattern := models.RecurrencePattern{Type: constvars.RecurrenceTypeDaily, Interval: 0, MaxOccurrences: 3}

		_, err := ExpandRecurrence(weeklyTemplate(), pattern, sequentialIDs("inst"))

		assert.Error(t, err)
	})

	t.Run("Missing End Condition Rejected", func(t *testing.T) {
		pattern := models.RecurrencePattern{Type: constvars.RecurrenceTypeDaily, Interval: 1}

		_, err := ExpandRecurrence(weeklyTemplate(), pattern, sequentialIDs("inst"))

		assert.Error(t, err, "unbounded expansion must fail validation")
	})

	t.Run("Both End Conditions Rejected", func(t *testing.T) {
		endDate := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
		pattern := models.RecurrencePattern{
			Type:           constvars.RecurrenceTypeDaily,
			Interval:       1,
			EndDate:        &endDate,
			MaxOccurrences: 5,
		}

		_, err := ExpandRecurrence(weeklyTemplate(), pattern, sequentialIDs("inst"))

		assert.Error(t, err)
	})

	t.Run("Invalid Template Interval Rejected", func(t *testing.T) {
		template := weeklyTemplate()
		template.End = template.Start
		pattern := models.RecurrencePattern{Type: constvars.RecurrenceTypeDaily, Interval: 1, MaxOccurrences: 3}

		_, err := ExpandRecurrence(template, pattern, sequentialIDs("inst"))

		assert.Error(t, err)
	})

	t.Run("Idempotent For Identical Inputs", func(t *testing.T) {
		template := weeklyTemplate()
		pattern := models.RecurrencePattern{
			Type:           constvars.RecurrenceTypeWeekly,
			Interval:       2,
			MaxOccurrences: 4,
		}

		first, err := ExpandRecurrence(template, pattern, sequentialIDs("inst"))
		assert.NoError(t, err)
		second, err := ExpandRecurrence(template, pattern, sequentialIDs("inst"))
		assert.NoError(t, err)

		assert.Equal(t, first, second, "same template, pattern and id sequence must produce the same series")
	})

	t.Run("Chronological Output", func(t *testing.T) {
		template := weeklyTemplate()
		pattern := models.RecurrencePattern{
			Type:           constvars.RecurrenceTypeMonthly,
			Interval:       1,
			MaxOccurrences: 6,
		}

		series, err := ExpandRecurrence(template, pattern, sequentialIDs("inst"))

		assert.NoError(t, err)
		for i := 1; i < len(series); i++ {
			assert.True(t, series[i-1].Start.Before(series[i].Start))
		}
	})
}
