package requests

// OptimalSlotRequest is built from query parameters of the slot suggestion
// endpoint. PreferredDate is a calendar date in the service timezone.
type OptimalSlotRequest struct {
	TechnicianID    string `json:"technicianId" validate:"required"`
	DurationMinutes int    `json:"durationMinutes" validate:"required,gt=0"`
	PreferredDate   string `json:"preferredDate" validate:"required,datetime=2006-01-02"`
	TimePreference  string `json:"timePreference" validate:"omitempty,time_preference"`
}

// ConflictCheckRequest pre-flights a candidate interval without writing
// anything. ExcludeEntryID supports edit-in-place checks.
type ConflictCheckRequest struct {
	TechnicianID   string `json:"technicianId" validate:"required"`
	Start          string `json:"start" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	End            string `json:"end" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	ExcludeEntryID string `json:"excludeEntryId,omitempty"`
}
