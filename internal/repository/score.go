package repository

import (
	"context"

	"github.com/kavia-common/gaming-database/internal/domain"
)

// Score defines the interface for game score persistence
type Score interface {
	// InsertIfAbsent inserts the score unless a row with the exact
	// (game_id, user_id, score) triple exists. Returns true when a row
	// was inserted.
	InsertIfAbsent(ctx context.Context, score domain.GameScore) (bool, error)

	// GetScore returns the score a user achieved in a game, resolved by
	// natural keys (game code and username).
	GetScore(ctx context.Context, gameCode, username string) (*domain.GameScore, error)

	// TopScores returns the highest scores for a game, best first.
	TopScores(ctx context.Context, gameID int64, limit int) ([]domain.LeaderboardEntry, error)

	// Count returns the number of scores
	Count(ctx context.Context) (int, error)
}
