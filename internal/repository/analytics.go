package repository

import (
	"context"

	"github.com/kavia-common/gaming-database/internal/domain"
)

// Analytics defines the interface for analytics event persistence.
// Events are append-only; duplicates across runs are accepted behavior.
type Analytics interface {
	// Insert appends an event unconditionally
	Insert(ctx context.Context, event domain.AnalyticsEvent) error

	// Count returns the number of events
	Count(ctx context.Context) (int, error)
}
