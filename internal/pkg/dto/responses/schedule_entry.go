package responses

import "time"

type ScheduleEntry struct {
	ID                 string    `json:"id"`
	TechnicianID       string    `json:"technician_id"`
	Type               string    `json:"type"`
	Status             string    `json:"status"`
	Start              time.Time `json:"start"`
	End                time.Time `json:"end"`
	Title              string    `json:"title,omitempty"`
	Notes              string    `json:"notes,omitempty"`
	Location           string    `json:"location,omitempty"`
	ClientID           string    `json:"client_id,omitempty"`
	TicketID           string    `json:"ticket_id,omitempty"`
	Participants       []string  `json:"participants,omitempty"`
	RecurrenceParentID string    `json:"recurrence_parent_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ScheduleConflict describes one stored entry overlapping a candidate
// interval. Surfaced in 409 responses and conflict-check results.
type ScheduleConflict struct {
	EntryID      string    `json:"entry_id"`
	TechnicianID string    `json:"technician_id"`
	Type         string    `json:"type"`
	Title        string    `json:"title,omitempty"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
}

// RecurringSeries is the payload of a successful series creation.
type RecurringSeries struct {
	ParentID string          `json:"parent_id"`
	Entries  []ScheduleEntry `json:"entries"`
}

// RecurringSeriesConflicts reports every conflicting instance of a rejected
// series. No entries are created when this is returned.
type RecurringSeriesConflicts struct {
	Conflicts []InstanceConflict `json:"conflicts"`
}

// InstanceConflict ties one generated occurrence to the stored entries it
// overlaps.
type InstanceConflict struct {
	OccurrenceIndex int                `json:"occurrence_index"`
	Start           time.Time          `json:"start"`
	End             time.Time          `json:"end"`
	With            []ScheduleConflict `json:"with"`
}
