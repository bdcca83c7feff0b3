package requests

// CreateScheduleEntryRequest carries a single booking for one technician.
// Timestamps are RFC3339 with timezone; they are normalized to UTC before the
// engine sees them.
type CreateScheduleEntryRequest struct {
	TechnicianID string `json:"technicianId" validate:"required"`
	Type         string `json:"type" validate:"required"`
	Start        string `json:"start" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	End          string `json:"end" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`

	Title    string `json:"title" validate:"required,max=200"`
	Notes    string `json:"notes,omitempty" validate:"max=2000"`
	Location string `json:"location,omitempty" validate:"max=500"`

	ClientID     string   `json:"clientId,omitempty"`
	TicketID     string   `json:"ticketId,omitempty"`
	Participants []string `json:"participants,omitempty"`

	Priority          string            `json:"priority,omitempty"`
	EstimatedDuration int               `json:"estimatedDuration,omitempty" validate:"omitempty,gte=0"`
	TravelTime        int               `json:"travelTime,omitempty" validate:"omitempty,gte=0"`
	RequiredSkills    []string          `json:"requiredSkills,omitempty"`
	Equipment         []string          `json:"equipment,omitempty"`
	Reminders         []ReminderRequest `json:"reminders,omitempty" validate:"dive"`
}

type ReminderRequest struct {
	MinutesBefore int    `json:"minutesBefore" validate:"required,gt=0"`
	Channel       string `json:"channel" validate:"required,oneof=email sms push"`
}

// UpdateScheduleEntryRequest mirrors the create payload; start, end and
// technician changes trigger a fresh conflict check that excludes the entry
// being edited.
type UpdateScheduleEntryRequest struct {
	TechnicianID string `json:"technicianId" validate:"required"`
	Type         string `json:"type" validate:"required"`
	Status       string `json:"status" validate:"required,oneof=scheduled in-progress completed cancelled"`
	Start        string `json:"start" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	End          string `json:"end" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`

	Title    string `json:"title" validate:"required,max=200"`
	Notes    string `json:"notes,omitempty" validate:"max=2000"`
	Location string `json:"location,omitempty" validate:"max=500"`

	ClientID     string   `json:"clientId,omitempty"`
	TicketID     string   `json:"ticketId,omitempty"`
	Participants []string `json:"participants,omitempty"`

	Priority          string            `json:"priority,omitempty"`
	EstimatedDuration int               `json:"estimatedDuration,omitempty" validate:"omitempty,gte=0"`
	TravelTime        int               `json:"travelTime,omitempty" validate:"omitempty,gte=0"`
	RequiredSkills    []string          `json:"requiredSkills,omitempty"`
	Equipment         []string          `json:"equipment,omitempty"`
	Reminders         []ReminderRequest `json:"reminders,omitempty" validate:"dive"`
}

// RecurrencePatternRequest describes the expansion rule for a recurring
// booking. Exactly one of endDate and maxOccurrences must be set.
type RecurrencePatternRequest struct {
	Type           string `json:"type" validate:"required,recurrence_type"`
	Interval       int    `json:"interval" validate:"required,gte=1"`
	EndDate        string `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	MaxOccurrences int    `json:"maxOccurrences,omitempty" validate:"omitempty,gte=1"`
}

type CreateRecurringScheduleRequest struct {
	Entry      CreateScheduleEntryRequest `json:"entry" validate:"required"`
	Recurrence RecurrencePatternRequest   `json:"recurrence" validate:"required"`
}
