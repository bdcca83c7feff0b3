package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Schedule entry messages
	ScheduleEntryCreatedSuccess   = "schedule entry created successfully"
	ScheduleEntryUpdatedSuccess   = "schedule entry updated successfully"
	ScheduleEntryCancelledSuccess = "schedule entry cancelled successfully"
	ScheduleEntryDeletedSuccess   = "schedule entry deleted successfully"
	ScheduleEntriesGetSuccess     = "schedule entries retrieved successfully"
	RecurringSeriesCreatedSuccess = "recurring series created successfully"

	// Availability messages
	OptimalSlotFoundSuccess = "optimal slot found"
	NoSlotAvailable         = "no slot of the requested duration is available"
	ConflictCheckSuccess    = "conflict check completed"

	// Technician messages
	TechnicianCreatedSuccess = "technician created successfully"
	TechnicianUpdatedSuccess = "technician updated successfully"
	TechnicianDeletedSuccess = "technician deleted successfully"
	TechniciansGetSuccess    = "technicians retrieved successfully"
)
