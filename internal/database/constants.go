package database

import "time"

// Connection Constants
const (
	// DefaultBusyTimeout bounds how long a connection waits on a locked
	// database before failing. Matches the health check deadline.
	DefaultBusyTimeout = 2 * time.Second

	// DriverName is the database/sql driver registered by modernc.org/sqlite
	DriverName = "sqlite"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToOpenDatabase        = "failed to open database"
	ErrMsgFailedToSetPragma           = "failed to set pragma"
	ErrMsgFailedToPingDatabase        = "failed to ping database"
	ErrMsgFailedToBeginTransaction    = "failed to begin transaction"
	ErrMsgFailedToRollbackTransaction = "Failed to rollback transaction"
)

// Log Messages
const (
	LogMsgSuccessfullyOpenedDatabase = "Successfully opened the database"
)
