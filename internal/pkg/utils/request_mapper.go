package utils

import (
	"deskwise-service/internal/app/models"
	"deskwise-service/internal/pkg/constvars"
	"deskwise-service/internal/pkg/dto/requests"
)

// BuildScheduleEntryDraft maps a create payload to a model with parsed, UTC
// normalized timestamps. The id and lifecycle fields are assigned by the
// usecase layer.
func BuildScheduleEntryDraft(request *requests.CreateScheduleEntryRequest) (*models.ScheduleEntry, error) {
	start, err := ParseRFC3339UTC(request.Start)
	if err != nil {
		return nil, err
	}
	end, err := ParseRFC3339UTC(request.End)
	if err != nil {
		return nil, err
	}

	return &models.ScheduleEntry{
		TechnicianID:      request.TechnicianID,
		Type:              request.Type,
		Status:            constvars.ScheduleStatusScheduled,
		Start:             start,
		End:               end,
		Title:             request.Title,
		Notes:             request.Notes,
		Location:          request.Location,
		ClientID:          request.ClientID,
		TicketID:          request.TicketID,
		Participants:      request.Participants,
		Priority:          request.Priority,
		EstimatedDuration: request.EstimatedDuration,
		TravelTime:        request.TravelTime,
		RequiredSkills:    request.RequiredSkills,
		Equipment:         request.Equipment,
		Reminders:         buildReminders(request.Reminders),
	}, nil
}

func BuildScheduleEntryPatch(request *requests.UpdateScheduleEntryRequest) (*models.ScheduleEntry, error) {
	start, err := ParseRFC3339UTC(request.Start)
	if err != nil {
		return nil, err
	}
	end, err := ParseRFC3339UTC(request.End)
	if err != nil {
		return nil, err
	}

	return &models.ScheduleEntry{
		TechnicianID:      request.TechnicianID,
		Type:              request.Type,
		Status:            request.Status,
		Start:             start,
		End:               end,
		Title:             request.Title,
		Notes:             request.Notes,
		Location:          request.Location,
		ClientID:          request.ClientID,
		TicketID:          request.TicketID,
		Participants:      request.Participants,
		Priority:          request.Priority,
		EstimatedDuration: request.EstimatedDuration,
		TravelTime:        request.TravelTime,
		RequiredSkills:    request.RequiredSkills,
		Equipment:         request.Equipment,
		Reminders:         buildReminders(request.Reminders),
	}, nil
}

// BuildRecurrencePattern maps and parses the recurrence payload. End
// condition exclusivity is enforced by the expander, not here.
func BuildRecurrencePattern(request *requests.RecurrencePatternRequest) (*models.RecurrencePattern, error) {
	pattern := &models.RecurrencePattern{
		Type:           request.Type,
		Interval:       request.Interval,
		MaxOccurrences: request.MaxOccurrences,
	}
	if request.EndDate != "" {
		endDate, err := ParseRFC3339UTC(request.EndDate)
		if err != nil {
			return nil, err
		}
		pattern.EndDate = &endDate
	}
	return pattern, nil
}

func BuildTechnicianModel(request *requests.CreateTechnicianRequest) *models.Technician {
	return &models.Technician{
		Name:   request.Name,
		Email:  request.Email,
		Skills: request.Skills,
		Active: true,
	}
}

func buildReminders(reminders []requests.ReminderRequest) []models.Reminder {
	if len(reminders) == 0 {
		return nil
	}
	result := make([]models.Reminder, 0, len(reminders))
	for _, reminder := range reminders {
		result = append(result, models.Reminder{
			MinutesBefore: reminder.MinutesBefore,
			Channel:       reminder.Channel,
		})
	}
	return result
}
