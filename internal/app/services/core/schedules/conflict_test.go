package schedules

import (
	"deskwise-service/internal/app/models"
	"deskwise-service/internal/pkg/constvars"
	"deskwise-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func entryAt(id string, startHour, endHour int) models.ScheduleEntry {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	return models.ScheduleEntry{
		ID:           id,
		TechnicianID: "tech-1",
		Type:         constvars.ScheduleTypeAppointment,
		Status:       constvars.ScheduleStatusScheduled,
		Start:        day.Add(time.Duration(startHour) * time.Hour),
		End:          day.Add(time.Duration(endHour) * time.Hour),
	}
}

func TestDetectConflicts(t *testing.T) {
	t.Run("Returns Complete Ordered Set", func(t *testing.T) {
		candidates := []models.ScheduleEntry{
			entryAt("a", 9, 10),
			entryAt("b", 11, 12),
			entryAt("c", 13, 14),
		}
		day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
		requested := Interval{
			Start: day.Add(9*time.Hour + 30*time.Minute),
			End:   day.Add(13*time.Hour + 30*time.Minute),
		}

		conflicts, err := DetectConflicts(candidates, requested, "")

		assert.NoError(t, err)
		assert.Len(t, conflicts, 3, "every overlapping entry must be reported, not just the first")
		assert.Equal(t, "a", conflicts[0].ID)
		assert.Equal(t, "b", conflicts[1].ID)
		assert.Equal(t, "c", conflicts[2].ID)
	})

	t.Run("Excludes Entry Being Edited", func(t *testing.T) {
		candidates := []models.ScheduleEntry{
			entryAt("x", 9, 10),
			entryAt("y", 9, 11),
		}
		requested := Interval{Start: candidates[0].Start, End: candidates[0].End}

		conflicts, err := DetectConflicts(candidates, requested, "x")

		assert.NoError(t, err)
		assert.Len(t, conflicts, 1)
		assert.Equal(t, "y", conflicts[0].ID, "the edited entry must never conflict with itself")
	})

	t.Run("Excludes Cancelled Entries", func(t *testing.T) {
		cancelled := entryAt("cancelled", 9, 10)
		cancelled.Status = constvars.ScheduleStatusCancelled
		candidates := []models.ScheduleEntry{cancelled, entryAt("live", 9, 10)}
		requested := Interval{Start: cancelled.Start, End: cancelled.End}

		conflicts, err := DetectConflicts(candidates, requested, "")

		assert.NoError(t, err)
		assert.Len(t, conflicts, 1)
		assert.Equal(t, "live", conflicts[0].ID)
	})

	t.Run("Ties Broken By ID", func(t *testing.T) {
		candidates := []models.ScheduleEntry{
			entryAt("bbb", 9, 10),
			entryAt("aaa", 9, 10),
		}
		requested := Interval{Start: candidates[0].Start, End: candidates[0].End}

		conflicts, err := DetectConflicts(candidates, requested, "")

		assert.NoError(t, err)
		assert.Equal(t, "aaa", conflicts[0].ID)
		assert.Equal(t, "bbb", conflicts[1].ID)
	})

	t.Run("Adjacent Entry Is Not A Conflict", func(t *testing.T) {
		candidates := []models.ScheduleEntry{entryAt("a", 9, 10)}
		day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
		requested := Interval{Start: day.Add(10 * time.Hour), End: day.Add(11 * time.Hour)}

		conflicts, err := DetectConflicts(candidates, requested, "")

		assert.NoError(t, err)
		assert.Empty(t, conflicts)
	})

	t.Run("Invalid Interval Rejected", func(t *testing.T) {
		day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
		requested := Interval{Start: day.Add(10 * time.Hour), End: day.Add(10 * time.Hour)}

		_, err := DetectConflicts(nil, requested, "")

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Deterministic Across Calls", func(t *testing.T) {
		candidates := []models.ScheduleEntry{
			entryAt("b", 11, 12),
			entryAt("a", 9, 10),
		}
		day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
		requested := Interval{Start: day.Add(9 * time.Hour), End: day.Add(12 * time.Hour)}

		first, err := DetectConflicts(candidates, requested, "")
		assert.NoError(t, err)
		second, err := DetectConflicts(candidates, requested, "")
		assert.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
