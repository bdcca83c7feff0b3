package requests

type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// ScheduleEntryListQuery narrows schedule entry listings. Both range bounds
// are required so listings stay bounded; includeCancelled defaults to false.
type ScheduleEntryListQuery struct {
	TechnicianID     string `json:"technicianId" validate:"required"`
	RangeStart       string `json:"rangeStart" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	RangeEnd         string `json:"rangeEnd" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	IncludeCancelled bool   `json:"includeCancelled"`
}
