package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kavia-common/gaming-database/internal/domain"
	"github.com/kavia-common/gaming-database/internal/repository"
)

type gameRepository struct {
	db repository.Executor
}

// NewGameRepository creates a new SQLite game repository
func NewGameRepository(db repository.Executor) repository.Game {
	return &gameRepository{db: db}
}

// InsertIfAbsent inserts the game unless its code is already registered
func (r *gameRepository) InsertIfAbsent(ctx context.Context, game domain.Game) (bool, error) {
	query := `
		INSERT INTO games (code, title, description, category, is_active)
		SELECT ?, ?, ?, ?, ?
		WHERE NOT EXISTS (SELECT 1 FROM games WHERE code = ?)
	`

	isActive := 0
	if game.IsActive {
		isActive = 1
	}

	res, err := r.db.ExecContext(ctx, query,
		game.Code, game.Title, game.Description, game.Category, isActive,
		game.Code)
	if err != nil {
		return false, fmt.Errorf("failed to insert game %q: %w", game.Code, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n > 0, nil
}

// GetByCode returns the game with the given code
func (r *gameRepository) GetByCode(ctx context.Context, code string) (*domain.Game, error) {
	query := `
		SELECT id, code, title, description, category, is_active, created_at
		FROM games WHERE code = ?
	`

	var (
		game        domain.Game
		description sql.NullString
		category    sql.NullString
		isActive    int
		createdAt   string
	)
	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&game.ID, &game.Code, &game.Title, &description, &category, &isActive, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game %q: %w", code, err)
	}

	game.Description = description.String
	game.Category = category.String
	game.IsActive = isActive != 0
	game.CreatedAt = parseTimestamp(createdAt)
	return &game, nil
}

// GetIDByCode resolves a game code to its row ID
func (r *gameRepository) GetIDByCode(ctx context.Context, code string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM games WHERE code = ?`, code).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrGameNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve game %q: %w", code, err)
	}
	return id, nil
}

// Count returns the number of games
func (r *gameRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM games`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count games: %w", err)
	}
	return count, nil
}
