package repository

import (
	"context"

	"github.com/kavia-common/gaming-database/internal/domain"
)

// Game defines the interface for game persistence
type Game interface {
	// InsertIfAbsent inserts the game unless a row with the same code
	// exists. Returns true when a row was inserted.
	InsertIfAbsent(ctx context.Context, game domain.Game) (bool, error)

	// GetByCode returns the game with the given code, or domain.ErrGameNotFound.
	GetByCode(ctx context.Context, code string) (*domain.Game, error)

	// GetIDByCode resolves a game code to its row ID, or domain.ErrGameNotFound.
	GetIDByCode(ctx context.Context, code string) (int64, error)

	// Count returns the number of games
	Count(ctx context.Context) (int, error)
}
