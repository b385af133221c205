package sqlite

import (
	"context"
	"fmt"

	"github.com/kavia-common/gaming-database/internal/domain"
	"github.com/kavia-common/gaming-database/internal/repository"
)

type analyticsRepository struct {
	db repository.Executor
}

// NewAnalyticsRepository creates a new SQLite analytics event repository
func NewAnalyticsRepository(db repository.Executor) repository.Analytics {
	return &analyticsRepository{db: db}
}

// Insert appends an event unconditionally. Analytics rows are allowed to
// duplicate across runs.
func (r *analyticsRepository) Insert(ctx context.Context, event domain.AnalyticsEvent) error {
	query := `
		INSERT INTO analytics_events (user_id, game_id, event_type, event_props)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		nullInt64(event.UserID), nullInt64(event.GameID), event.EventType, nullString(event.EventProps))
	if err != nil {
		return fmt.Errorf("failed to insert analytics event %q: %w", event.EventType, err)
	}
	return nil
}

// Count returns the number of events
func (r *analyticsRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM analytics_events`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count analytics events: %w", err)
	}
	return count, nil
}
