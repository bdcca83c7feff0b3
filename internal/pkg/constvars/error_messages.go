package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":        "is required",
	"min":             "must be at least %s characters long",
	"max":             "maximum at %s characters long",
	"numeric":         "must be a number",
	"oneof":           "must be one of [%s]",
	"gt":              "must be greater than %s",
	"gte":             "must be greater than or equal to %s",
	"lt":              "must be less than %s",
	"lte":             "must be less than or equal to %s",
	"email":           "must be a valid email",
	"uuid":            "must be a valid UUID",
	"datetime":        "must be a valid timestamp in %s format",
	"time_preference": "must be one of 'morning', 'afternoon' or 'any'",
	"recurrence_type": "must be one of 'daily', 'weekly' or 'monthly'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"gt":       true,
	"gte":      true,
	"lt":       true,
	"lte":      true,
	"datetime": true,
}

// Client-facing messages
const (
	ErrClientCannotProcessRequest          = "Unable to process your request, please recheck your request"
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientScheduleConflict              = "The requested time overlaps existing bookings for this technician"
	ErrClientInvalidInterval               = "The start time must be before the end time"
	ErrClientInvalidRecurrence             = "The recurrence pattern is invalid"
	ErrClientScheduleEntryNotFound         = "The requested schedule entry could not be found"
	ErrClientTechnicianNotFound            = "The requested technician could not be found"
	ErrClientTechnicianInactive            = "The technician is not active and cannot be booked"
	ErrClientTechnicianBusy                = "The technician's calendar is being modified, please retry"
)

// Developer-facing messages
const (
	ErrDevValidationFailed     = "Request validation failed"
	ErrDevInvalidInput         = "Invalid input"
	ErrDevCannotParseJSON      = "Failed to parse JSON request body"
	ErrDevCannotMarshalJSON    = "Failed to marshal value to JSON"
	ErrDevCannotParseTime      = "Failed to parse timestamp"
	ErrDevInvalidInterval      = "Interval start must be strictly before end"
	ErrDevInvalidRecurrence    = "Recurrence pattern failed validation"
	ErrDevScheduleConflict     = "Candidate interval overlaps stored entries"
	ErrDevScheduleEntryMissing = "Schedule entry does not exist in store"
	ErrDevTechnicianMissing    = "Technician does not exist in store"
	ErrDevTechnicianInactive   = "Technician is flagged inactive"
	ErrDevLockNotAcquired      = "Failed to acquire technician calendar lock"

	ErrDevURLParamIDValidationFailed = "URL parameter '%s' failed validation"

	ErrDevDBFailedToFindDocument     = "MongoDB failed to find document"
	ErrDevDBFailedToInsertDocument   = "MongoDB failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "MongoDB failed to update document"
	ErrDevDBFailedToDeleteDocument   = "MongoDB failed to delete document"
	ErrDevDBFailedToIterateDocuments = "MongoDB failed to iterate documents"

	ErrDevRedisGetNoData      = "Redis has no data for key: %s"
	ErrDevRedisGetData        = "Redis failed to get data"
	ErrDevRedisSetData        = "Redis failed to set data"
	ErrDevRedisDeleteData     = "Redis failed to delete data"
	ErrDevRedisAddToSet       = "Redis failed to add member to set"
	ErrDevRedisCheckSetMember = "Redis failed to check set membership"
	ErrDevRedisUnlock         = "Redis failed to release lock"
	ErrDevRedisExpireKey      = "Redis failed to set key expiration"

	ErrDevRabbitMQPublish = "RabbitMQ failed to publish message"
)
