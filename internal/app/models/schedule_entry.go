package models

import (
	"deskwise-service/internal/pkg/constvars"
	"time"
)

// ScheduleEntry is one bookable block of a technician's time. The interval it
// occupies is half-open: [Start, End).
type ScheduleEntry struct {
	ID           string `bson:"_id,omitempty"`
	TechnicianID string `bson:"technicianId"`
	Type         string `bson:"type"`
	Status       string `bson:"status"`

	Start time.Time `bson:"start"`
	End   time.Time `bson:"end"`

	Title    string `bson:"title,omitempty"`
	Notes    string `bson:"notes,omitempty"`
	Location string `bson:"location,omitempty"`

	// Opaque references to other helpdesk entities. Existence is not
	// validated here.
	ClientID     string   `bson:"clientId,omitempty"`
	TicketID     string   `bson:"ticketId,omitempty"`
	Participants []string `bson:"participants,omitempty"`

	// RecurrenceParentID is set on generated instances and points at the
	// series template entry. Absent on standalone entries and on the
	// template itself.
	RecurrenceParentID string `bson:"recurrenceParentId,omitempty"`

	// Scheduling metadata carried through unchanged; not interpreted by the
	// conflict or slot algorithms.
	Priority          string     `bson:"priority,omitempty"`
	EstimatedDuration int        `bson:"estimatedDuration,omitempty"`
	TravelTime        int        `bson:"travelTime,omitempty"`
	RequiredSkills    []string   `bson:"requiredSkills,omitempty"`
	Equipment         []string   `bson:"equipment,omitempty"`
	Reminders         []Reminder `bson:"reminders,omitempty"`

	TimeModel `bson:",inline"`
}

// Reminder describes a notification to be dispatched ahead of the entry start.
type Reminder struct {
	MinutesBefore int    `bson:"minutesBefore" json:"minutesBefore"`
	Channel       string `bson:"channel" json:"channel"`
}

// IsCancelled reports whether the entry is excluded from conflict detection
// and slot search.
func (e *ScheduleEntry) IsCancelled() bool {
	return e.Status == constvars.ScheduleStatusCancelled
}

// RecurrencePattern describes how a template entry expands into a series.
// Exactly one of EndDate and MaxOccurrences must be set so expansion is finite.
type RecurrencePattern struct {
	Type           string     `bson:"type" json:"type"`
	Interval       int        `bson:"interval" json:"interval"`
	EndDate        *time.Time `bson:"endDate,omitempty" json:"endDate,omitempty"`
	MaxOccurrences int        `bson:"maxOccurrences,omitempty" json:"maxOccurrences,omitempty"`
}
