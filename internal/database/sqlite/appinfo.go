package sqlite

import (
	"context"
	"fmt"

	"github.com/kavia-common/gaming-database/internal/domain"
	"github.com/kavia-common/gaming-database/internal/repository"
)

type appInfoRepository struct {
	db repository.Executor
}

// NewAppInfoRepository creates a new SQLite app_info repository
func NewAppInfoRepository(db repository.Executor) repository.AppInfo {
	return &appInfoRepository{db: db}
}

// Upsert inserts or replaces a metadata row (last write wins)
func (r *appInfoRepository) Upsert(ctx context.Context, key, value string) error {
	query := `INSERT OR REPLACE INTO app_info (key, value) VALUES (?, ?)`

	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to upsert app_info %q: %w", key, err)
	}
	return nil
}

// Get returns the metadata row for key
func (r *appInfoRepository) Get(ctx context.Context, key string) (*domain.AppInfo, error) {
	query := `SELECT id, key, value, created_at FROM app_info WHERE key = ?`

	var (
		info      domain.AppInfo
		createdAt string
	)
	err := r.db.QueryRowContext(ctx, query, key).Scan(&info.ID, &info.Key, &info.Value, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get app_info %q: %w", key, err)
	}
	info.CreatedAt = parseTimestamp(createdAt)
	return &info, nil
}

// Count returns the number of metadata rows
func (r *appInfoRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM app_info`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count app_info rows: %w", err)
	}
	return count, nil
}
