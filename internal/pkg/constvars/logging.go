package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingTechnicianIDKey = "technician_id"
	LoggingEntryIDKey      = "entry_id"
	LoggingRedisKey        = "redis_key"
	LoggingConflictCount   = "conflict_count"
	LoggingOccurrenceCount = "occurrence_count"
	LoggingGapCount        = "gap_count"
	LoggingQueueKey        = "queue"

	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockValueKey          = "lock_value"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
)
