package constvars

type ContextKey string

const (
	ResourceTechnicians     = "technicians"
	ResourceScheduleEntries = "schedule-entries"
	ResourceAvailability    = "availability"
)

const (
	MongoCollectionScheduleEntries = "scheduleEntries"
	MongoCollectionTechnicians     = "technicians"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "DSKW_SVC_"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

// Schedule entry lifecycle statuses. Cancelled entries never participate in
// conflict detection or slot search.
const (
	ScheduleStatusScheduled  = "scheduled"
	ScheduleStatusInProgress = "in-progress"
	ScheduleStatusCompleted  = "completed"
	ScheduleStatusCancelled  = "cancelled"
)

// Schedule entry category tags. Open set, display/filtering only; every type
// conflicts with every other type for the same technician.
const (
	ScheduleTypeAppointment = "appointment"
	ScheduleTypeMeeting     = "meeting"
	ScheduleTypeTimeOff     = "time-off"
	ScheduleTypeTravel      = "travel"
)

// Recurrence pattern types.
const (
	RecurrenceTypeDaily   = "daily"
	RecurrenceTypeWeekly  = "weekly"
	RecurrenceTypeMonthly = "monthly"
)

// Time-of-day preferences for slot search.
const (
	TimePreferenceMorning   = "morning"
	TimePreferenceAfternoon = "afternoon"
	TimePreferenceAny       = "any"
)

const (
	// RedisKeyTechnicianLockFormat serializes conflict-check + insert per technician.
	RedisKeyTechnicianLockFormat = "schedule:lock:technician:%s"
	// RedisKeyReminderSentSetFormat deduplicates dispatched reminders per day.
	RedisKeyReminderSentSetFormat = "reminders:sent:%s"
	// RedisKeyReminderLeaderLock ensures a single reminder worker leader.
	RedisKeyReminderLeaderLock = "reminders:leader"
)
