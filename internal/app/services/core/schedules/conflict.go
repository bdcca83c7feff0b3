package schedules

import (
	"deskwise-service/internal/app/models"
	"fmt"
	"sort"

	"deskwise-service/internal/pkg/exceptions"
)

// DetectConflicts filters the candidate entries down to those whose interval
// overlaps the requested one, skipping cancelled entries and, when excludeID
// is non-empty, the entry with that id. The result is the complete set of
// overlapping entries ordered ascending by start, id as tiebreak, so the same
// inputs always produce the same ordered output.
func DetectConflicts(candidates []models.ScheduleEntry, requested Interval, excludeID string) ([]models.ScheduleEntry, error) {
	if !requested.Start.Before(requested.End) {
		return nil, exceptions.ErrInvalidInterval(fmt.Errorf("interval start %s is not before end %s", requested.Start, requested.End))
	}

	var conflicts []models.ScheduleEntry
	for _, candidate := range candidates {
		if excludeID != "" && candidate.ID == excludeID {
			continue
		}
		if candidate.IsCancelled() {
			continue
		}
		if Overlaps(Interval{Start: candidate.Start, End: candidate.End}, requested) {
			conflicts = append(conflicts, candidate)
		}
	}

	sort.SliceStable(conflicts, func(i, j int) bool {
		if conflicts[i].Start.Equal(conflicts[j].Start) {
			return conflicts[i].ID < conflicts[j].ID
		}
		return conflicts[i].Start.Before(conflicts[j].Start)
	})
	return conflicts, nil
}
