package repository

import (
	"context"

	"github.com/kavia-common/gaming-database/internal/domain"
)

// AppInfo defines the interface for metadata persistence
type AppInfo interface {
	// Upsert inserts or replaces a key/value pair (last write wins)
	Upsert(ctx context.Context, key, value string) error

	// Get returns the row for key
	Get(ctx context.Context, key string) (*domain.AppInfo, error)

	// Count returns the number of metadata rows
	Count(ctx context.Context) (int, error)
}
