package database

import "time"

// Connection pool defaults
const (
	// DefaultMinConnections keeps a couple of warm connections so review
	// bursts from the admin dashboard don't pay dial latency.
	DefaultMinConnections = 2

	// DefaultPingTimeout bounds the startup connectivity check.
	DefaultPingTimeout = 5 * time.Second
)

// Error messages
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
)

// Log messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
)
