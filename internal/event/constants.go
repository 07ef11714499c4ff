package event

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// Retry configuration constants
const (
	// RetryInitialDelaySeconds is the base retry delay in seconds
	RetryInitialDelaySeconds = 2

	// RetryMaxAttempts is the default maximum number of retry attempts
	RetryMaxAttempts = 5
)

// DeadLetterFilePermissions is the file permission mode for dead-letter files
const DeadLetterFilePermissions = 0644

// LogMsgHandlerErrorFormat reports collected handler failures from Publish
const LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
