package domain

import "errors"

// Sentinel errors for the datastore layer. Wrap with fmt.Errorf("%s: %w")
// to add context; check with errors.Is at the boundary.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrGameNotFound = errors.New("game not found")

	// ErrDatabaseUnavailable indicates the database file is missing or
	// could not be opened within the health-check deadline.
	ErrDatabaseUnavailable = errors.New("database unavailable")
)
