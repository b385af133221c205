package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"
)

// DB is the subset of *sql.DB the rest of the application depends on.
type DB interface {
	PingContext(ctx context.Context) error
	Close() error
}

// Open opens (creating if absent) the SQLite database file at path and
// applies session pragmas. SQLite ships with foreign-key enforcement off,
// so it must be switched on explicitly for every connection.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpenDatabase, err)
	}

	// Serialize access through one connection so the pragmas below apply
	// to every statement. The workload is single-threaded by design.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		fmt.Sprintf("PRAGMA busy_timeout = %d", DefaultBusyTimeout.Milliseconds()),
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s %q: %w", ErrMsgFailedToSetPragma, pragma, err)
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Debug(LogMsgSuccessfullyOpenedDatabase, "path", path)
	return db, nil
}
