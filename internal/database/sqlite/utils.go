package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/kavia-common/gaming-database/internal/logger"
)

// sqliteTimeLayout is how SQLite renders CURRENT_TIMESTAMP defaults.
const sqliteTimeLayout = "2006-01-02 15:04:05"

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxDone
func SafeRollback(ctx context.Context, tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// ---- Common Helper Functions ----

// parseTimestamp converts a SQLite timestamp string to time.Time.
// Returns the zero time for empty or unparseable input rather than
// failing the whole row scan.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(sqliteTimeLayout, s)
	if err != nil {
		// Some writers store RFC 3339 instead.
		if t, err = time.Parse(time.RFC3339, s); err != nil {
			return time.Time{}
		}
	}
	return t
}

// nullString converts a *string to sql.NullString
func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// ptrString converts a sql.NullString to *string
func ptrString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

// nullInt64 converts a *int64 to sql.NullInt64
func nullInt64(i *int64) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *i, Valid: true}
}
