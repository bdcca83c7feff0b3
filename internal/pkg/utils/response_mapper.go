package utils

import (
	"deskwise-service/internal/app/models"
	"deskwise-service/internal/pkg/dto/responses"
)

func BuildScheduleEntryResponse(entry *models.ScheduleEntry) *responses.ScheduleEntry {
	return &responses.ScheduleEntry{
		ID:                 entry.ID,
		TechnicianID:       entry.TechnicianID,
		Type:               entry.Type,
		Status:             entry.Status,
		Start:              entry.Start,
		End:                entry.End,
		Title:              entry.Title,
		Notes:              entry.Notes,
		Location:           entry.Location,
		ClientID:           entry.ClientID,
		TicketID:           entry.TicketID,
		Participants:       entry.Participants,
		RecurrenceParentID: entry.RecurrenceParentID,
		CreatedAt:          entry.CreatedAt,
		UpdatedAt:          entry.UpdatedAt,
	}
}

func BuildScheduleEntriesResponse(entries []models.ScheduleEntry) []responses.ScheduleEntry {
	result := make([]responses.ScheduleEntry, 0, len(entries))
	for i := range entries {
		result = append(result, *BuildScheduleEntryResponse(&entries[i]))
	}
	return result
}

func BuildScheduleConflictsResponse(entries []models.ScheduleEntry) []responses.ScheduleConflict {
	conflicts := make([]responses.ScheduleConflict, 0, len(entries))
	for _, entry := range entries {
		conflicts = append(conflicts, responses.ScheduleConflict{
			EntryID:      entry.ID,
			TechnicianID: entry.TechnicianID,
			Type:         entry.Type,
			Title:        entry.Title,
			Start:        entry.Start,
			End:          entry.End,
		})
	}
	return conflicts
}

func BuildTechnicianResponse(technician *models.Technician) *responses.Technician {
	return &responses.Technician{
		ID:        technician.ID,
		Name:      technician.Name,
		Email:     technician.Email,
		Skills:    technician.Skills,
		Active:    technician.Active,
		CreatedAt: technician.CreatedAt,
		UpdatedAt: technician.UpdatedAt,
	}
}

func BuildTechniciansResponse(technicians []models.Technician) []responses.Technician {
	result := make([]responses.Technician, 0, len(technicians))
	for i := range technicians {
		result = append(result, *BuildTechnicianResponse(&technicians[i]))
	}
	return result
}
